package screen

import (
	"github.com/nbhznb/learnify/internal/api"
	"github.com/nbhznb/learnify/internal/auth"
	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/store"
)

// Deps carries the shared services every screen may need. One value is
// built at startup and threaded through screen constructors.
type Deps struct {
	Client   *api.Client
	Auth     *auth.Service
	Supplier *quiz.Supplier
	Results  *store.ResultRepo
	State    *quiz.State
}
