package publishing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"newsroom/internal/models"
)

// The legacy scheduled-publish display string looks like
// "Thứ hai, 06/01/2025, 14:30 (GMT+7)". The canonical publish instant is
// Article.PublishedDate (UTC); the string is kept for rendering and as a
// fallback for records imported before PublishedDate existed.

const wallClockLayout = "02/01/2006, 15:04"

var displayPattern = regexp.MustCompile(`^(?:[^,]+,\s*)?(\d{2}/\d{2}/\d{4}, \d{2}:\d{2})\s*\(GMT([+-]\d{1,2})\)$`)

var weekdayNames = [7]string{
	"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy",
}

// displayZone is the fixed offset every display string is rendered in.
var displayZone = time.FixedZone("GMT+7", 7*3600)

// ParseDisplayTime turns a legacy display string back into a UTC instant.
// The weekday prefix is ignored, the DD/MM/YYYY, HH:mm part is read as wall
// clock in the stated GMT offset.
func ParseDisplayTime(s string) (time.Time, error) {
	m := displayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized display time %q", s)
	}

	wall, err := time.Parse(wallClockLayout, m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse display time %q: %w", s, err)
	}

	offsetHours, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse GMT offset in %q: %w", s, err)
	}

	return wall.Add(-time.Duration(offsetHours) * time.Hour), nil
}

// FormatDisplayTime renders the legacy display string for an instant. Output
// only; never parse this back when PublishedDate is available.
func FormatDisplayTime(t time.Time) string {
	local := t.In(displayZone)
	return fmt.Sprintf("%s, %02d/%02d/%04d, %02d:%02d (GMT+7)",
		weekdayNames[local.Weekday()],
		local.Day(), int(local.Month()), local.Year(),
		local.Hour(), local.Minute())
}

// ParseScheduleInput reads the schedule value an editor submits on
// approval: RFC 3339 when the client sends one, otherwise the
// datetime-local form value interpreted at the display offset.
func ParseScheduleInput(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", s, displayZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized schedule date %q", s)
	}
	return t.UTC(), nil
}

// PublishInstant resolves the scheduled publish instant of an article.
// PublishedDate wins when set; otherwise the legacy string is parsed. A nil
// result means the article has no parseable schedule and is treated as
// immediately visible.
func PublishInstant(a *models.Article) *time.Time {
	if a.PublishedDate != nil {
		t := a.PublishedDate.UTC()
		return &t
	}
	if a.PublishedAt == "" {
		return nil
	}
	t, err := ParseDisplayTime(a.PublishedAt)
	if err != nil {
		return nil
	}
	return &t
}

// EffectiveStatus computes the visibility of an article at read time. A
// stored "published" article with a future publish instant behaves as
// pending to the public; all other statuses pass through unchanged.
func EffectiveStatus(a *models.Article, now time.Time) models.ArticleStatus {
	if a.Status != models.StatusPublished {
		return a.Status
	}
	instant := PublishInstant(a)
	if instant == nil || !instant.After(now) {
		return models.StatusPublished
	}
	return models.StatusPending
}
