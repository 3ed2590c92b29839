package export

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samatva/samatva/internal/utils"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupHandler() *Handler {
	programService := program.NewProgramService(
		program.NewStubProgramRepo(), program.NewStubPlanRepo(),
		asset.NewCatalog(asset.NewStubSessionRepo(), asset.NewStubServiceRepo(), &asset.StubFileStorage{}),
		nil)
	catalog := asset.NewCatalog(asset.NewStubSessionRepo(), asset.NewStubServiceRepo(), &asset.StubFileStorage{})
	clock := &utils.MockClock{FixedNow: time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)}
	return NewExportHandler(programService, catalog, clock)
}

func TestHandler_ExportPrograms(t *testing.T) {
	t.Run("should respond with a dated XLSX attachment", func(t *testing.T) {
		// given
		handler := setupHandler()
		recorder := httptest.NewRecorder()

		// when
		handler.ExportPrograms(recorder, httptest.NewRequest("GET", "/api/program/export", nil))

		// then
		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, `attachment; filename="programs-2026-06-15.xlsx"`,
			recorder.Header().Get("Content-Disposition"))
		f, err := excelize.OpenReader(recorder.Body)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Programs")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
