package media

import (
	"github.com/ecodeclub/hirevue/internal/media/internal/service"
	"github.com/ecodeclub/hirevue/internal/media/internal/web"
)

type Store = service.Store
type Handler = web.Handler

type Module struct {
	Store Store
	Hdl   *Handler
}
