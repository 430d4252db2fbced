package handlers

import (
	"log"
	"net/http"

	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/usecase"
	"newpay_simulator/pkg"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler persists and restores the simulator state blob.

type SnapshotHandler struct {
	snapshot usecase.ISnapshotUseCase
	session  usecase.ISessionUseCase
}

func NewSnapshotHandler(snapshot usecase.ISnapshotUseCase, session usecase.ISessionUseCase) *SnapshotHandler {
	return &SnapshotHandler{snapshot: snapshot, session: session}
}

// SaveSnapshot writes the persisted state subset to the snapshot store.
//
// @Summary  Persist simulator state
// @Tags     snapshot
// @Produce  json
// @Success  204
// @Failure  502 {object} pkg.HTTPError
// @Router   /snapshot/save [post]
func (h *SnapshotHandler) SaveSnapshot(c *gin.Context) {
	if err := h.snapshot.Save(c.Request.Context()); err != nil {
		log.Printf("[snapshot][handler] save failed err=%v", err)
		writeAppError(c, pkg.NewDomainError("PERSISTENCE_FAILURE", "Snapshot store unavailable", err, http.StatusBadGateway))
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadSnapshot restores the persisted record over defaults and returns the
// resulting state. A missing or corrupt record restores plain defaults; that
// is a success, not an error.
//
// @Summary  Restore simulator state
// @Tags     snapshot
// @Produce  json
// @Success  200 {object} response.StateResponse
// @Router   /snapshot/load [post]
func (h *SnapshotHandler) LoadSnapshot(c *gin.Context) {
	restored, err := h.snapshot.Load(c.Request.Context())
	if err != nil {
		log.Printf("[snapshot][handler] load failed err=%v", err)
		writeAppError(c, pkg.NewDomainError("PERSISTENCE_FAILURE", "Snapshot store unavailable", err, http.StatusBadGateway))
		return
	}
	log.Printf("[snapshot][handler] load done restored=%t", restored)

	c.JSON(http.StatusOK, response.FromSessionView(h.session.View()))
}
