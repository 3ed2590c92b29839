package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/program"
	"github.com/samatva/samatva/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePrograms(t *testing.T) {
	t.Run("should render a header row and one row per program", func(t *testing.T) {
		// given
		offer := int64(40000)
		programs := []program.Program{
			{
				Title:       "Sleep Better",
				FocusArea:   taxonomy.FocusSleep,
				ProgramType: program.TypeSequential,
				Duration:    14,
				ProviderId:  "provider-1",
				Status:      program.StatusPublished,
				BasePrice:   50000,
				OfferPrice:  &offer,
				Currency:    "INR",
				CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				Title:       "Desk Stretch",
				FocusArea:   taxonomy.FocusBody,
				ProgramType: program.TypeModular,
				Duration:    7,
				ProviderId:  "provider-2",
				Status:      program.StatusDraft,
				BasePrice:   0,
				Currency:    "INR",
				CreatedAt:   time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
			},
		}
		var buf bytes.Buffer

		// when
		err := WritePrograms(&buf, programs)

		// then
		require.NoError(t, err)
		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Programs")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Title", rows[0][0])
		assert.Equal(t, "Sleep Better", rows[1][0])
		assert.Equal(t, "40000", rows[1][7])
		assert.Equal(t, "Desk Stretch", rows[2][0])
		assert.Equal(t, "2026-03-01", rows[1][9])
	})
}

func TestWriteSessions(t *testing.T) {
	t.Run("should render free sessions without a price", func(t *testing.T) {
		// given
		sessions := []asset.Session{
			{
				Title:       "Morning Breathwork",
				FocusArea:   taxonomy.FocusMind,
				ContentType: asset.ContentAudio,
				Duration:    20,
				Language:    "en",
				IsFree:      true,
				Status:      asset.SessionPublished,
				CreatedAt:   time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
			},
		}
		var buf bytes.Buffer

		// when
		err := WriteSessions(&buf, sessions)

		// then
		require.NoError(t, err)
		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Sessions")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Morning Breathwork", rows[1][0])
		assert.Equal(t, "yes", rows[1][7])
	})
}
