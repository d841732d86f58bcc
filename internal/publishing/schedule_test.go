package publishing

import (
	"testing"
	"time"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "full string with weekday prefix",
			input:    "Thứ hai, 06/01/2025, 14:30 (GMT+7)",
			expected: time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC),
		},
		{
			name:     "no weekday prefix",
			input:    "06/01/2025, 14:30 (GMT+7)",
			expected: time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC),
		},
		{
			name:     "negative offset",
			input:    "Thứ hai, 06/01/2025, 14:30 (GMT-5)",
			expected: time.Date(2025, 1, 6, 19, 30, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  Chủ nhật, 05/01/2025, 00:15 (GMT+7)  ",
			expected: time.Date(2025, 1, 4, 17, 15, 0, 0, time.UTC),
		},
		{
			name:    "missing offset",
			input:   "Thứ hai, 06/01/2025, 14:30",
			wantErr: true,
		},
		{
			name:    "wrong date layout",
			input:   "Thứ hai, 2025-01-06, 14:30 (GMT+7)",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "got %v, expected %v", got, tt.expected)
		})
	}
}

func TestFormatDisplayTime(t *testing.T) {
	// 07:30 UTC is 14:30 at GMT+7; 2025-01-06 is a Monday.
	instant := time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, "Thứ hai, 06/01/2025, 14:30 (GMT+7)", FormatDisplayTime(instant))

	// 18:00 UTC on Saturday rolls into Sunday at GMT+7.
	instant = time.Date(2025, 1, 4, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Chủ nhật, 05/01/2025, 01:00 (GMT+7)", FormatDisplayTime(instant))
}

func TestDisplayTimeRoundTrip(t *testing.T) {
	instant := time.Date(2025, 6, 15, 9, 45, 0, 0, time.UTC)
	parsed, err := ParseDisplayTime(FormatDisplayTime(instant))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestParseScheduleInput(t *testing.T) {
	got, err := ParseScheduleInput("2025-01-06T14:30:00+07:00")
	assert.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC)))

	// datetime-local form values carry no offset and mean display-zone
	// wall clock.
	got, err = ParseScheduleInput("2025-01-06T14:30")
	assert.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC)))

	_, err = ParseScheduleInput("next tuesday")
	assert.Error(t, err)
}

func TestPublishInstant(t *testing.T) {
	canonical := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("canonical instant wins over the display string", func(t *testing.T) {
		a := &models.Article{
			PublishedDate: &canonical,
			PublishedAt:   "Thứ hai, 06/01/2025, 14:30 (GMT+7)",
		}
		got := PublishInstant(a)
		assert.NotNil(t, got)
		assert.True(t, got.Equal(canonical))
	})

	t.Run("legacy string fallback", func(t *testing.T) {
		a := &models.Article{PublishedAt: "Thứ hai, 06/01/2025, 14:30 (GMT+7)"}
		got := PublishInstant(a)
		assert.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2025, 1, 6, 7, 30, 0, 0, time.UTC)))
	})

	t.Run("unparseable string means no schedule", func(t *testing.T) {
		a := &models.Article{PublishedAt: "sometime soon"}
		assert.Nil(t, PublishInstant(a))
	})

	t.Run("no schedule at all", func(t *testing.T) {
		assert.Nil(t, PublishInstant(&models.Article{}))
	})
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		article  models.Article
		expected models.ArticleStatus
	}{
		{
			name:     "published in the past stays published",
			article:  models.Article{Status: models.StatusPublished, PublishedDate: &past},
			expected: models.StatusPublished,
		},
		{
			name:     "published exactly now is visible",
			article:  models.Article{Status: models.StatusPublished, PublishedDate: &now},
			expected: models.StatusPublished,
		},
		{
			name:     "future schedule behaves as pending",
			article:  models.Article{Status: models.StatusPublished, PublishedDate: &future},
			expected: models.StatusPending,
		},
		{
			name:     "published without a schedule is immediately visible",
			article:  models.Article{Status: models.StatusPublished},
			expected: models.StatusPublished,
		},
		{
			name:     "draft passes through",
			article:  models.Article{Status: models.StatusDraft, PublishedDate: &past},
			expected: models.StatusDraft,
		},
		{
			name:     "rejected passes through",
			article:  models.Article{Status: models.StatusRejected},
			expected: models.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveStatus(&tt.article, now))
		})
	}
}
