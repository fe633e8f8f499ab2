package notes

import (
	"github.com/orbit-suite/orbit/internal/notes/app/service"
	"github.com/orbit-suite/orbit/internal/notes/domain"
	infrahttp "github.com/orbit-suite/orbit/internal/notes/infra/http"
	infrasql "github.com/orbit-suite/orbit/internal/notes/infra/sql"
	pkghttp "github.com/orbit-suite/orbit/pkg/http"
	"github.com/orbit-suite/orbit/pkg/lazy"
	pkgsql "github.com/orbit-suite/orbit/pkg/sql"
)

// ErrorMapping translates the module's business errors into response codes.
func ErrorMapping() map[int][]error {
	return map[int][]error{
		404: {domain.ErrNoteNotFound},
	}
}

type DependencyContainer struct {
	service lazy.Loader[service.NoteService]
}

func NewDependencyContainer(db pkgsql.TxClient) *DependencyContainer {
	return &DependencyContainer{
		service: lazy.New(func() (service.NoteService, error) {
			return service.NewNoteService(infrasql.NewNoteRepository(db)), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	svc := c.service.MustLoad()
	for _, handler := range []pkghttp.Handler{
		infrahttp.NewCreateNoteHandler(svc),
		infrahttp.NewListNotesHandler(svc),
		infrahttp.NewGetNoteHandler(svc),
		infrahttp.NewUpdateNoteHandler(svc),
		infrahttp.NewDeleteNoteHandler(svc),
	} {
		registry.Register(handler, opts...)
	}
}
