package export

import (
	"fmt"
	"net/http"

	"github.com/samatva/samatva/internal/utils"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/program"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	programs program.Service
	catalog  asset.Catalog
	clock    utils.Clock
}

func NewExportHandler(programs program.Service, catalog asset.Catalog, clock utils.Clock) *Handler {
	return &Handler{programs: programs, catalog: catalog, clock: clock}
}

func (h *Handler) ExportPrograms(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting programs to XLSX")
	programs, err := h.programs.ListPrograms(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeAttachmentHeaders(w, "programs")
	if err := WritePrograms(w, programs); err != nil {
		log.Errorf("failed to render programs export: %v", err)
	}
}

func (h *Handler) ExportSessions(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting sessions to XLSX")
	sessions, err := h.catalog.ListSessions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeAttachmentHeaders(w, "sessions")
	if err := WriteSessions(w, sessions); err != nil {
		log.Errorf("failed to render sessions export: %v", err)
	}
}

func (h *Handler) writeAttachmentHeaders(w http.ResponseWriter, name string) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, h.clock.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
