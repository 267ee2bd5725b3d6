package usecase

import (
	"sync"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/usecase/site"
)

// ActionHandler applies one kind of action to a visitor's store.
type ActionHandler func(store *site.Store, action domain.Action) error

// Dispatcher routes actions to the handler registered for their type.
type Dispatcher struct {
	handlers map[domain.ActionType]ActionHandler
	mu       sync.RWMutex
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[domain.ActionType]ActionHandler),
	}
}

// NewSiteDispatcher registers the three site actions.
func NewSiteDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.Register(domain.ActionSetPage, func(store *site.Store, action domain.Action) error {
		store.SetPage(action.Name)
		return nil
	})
	d.Register(domain.ActionToggleTheme, func(store *site.Store, _ domain.Action) error {
		store.ToggleTheme()
		return nil
	})
	d.Register(domain.ActionSetSearch, func(store *site.Store, action domain.Action) error {
		store.SetSearchTerm(action.Text)
		return nil
	})
	return d
}

func (d *Dispatcher) Register(kind domain.ActionType, handler ActionHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = handler
}

// Dispatch applies action to store. Unregistered types yield domain.ErrUnknownAction.
func (d *Dispatcher) Dispatch(store *site.Store, action domain.Action) error {
	d.mu.RLock()
	handler, ok := d.handlers[action.Type]
	d.mu.RUnlock()
	if !ok {
		return domain.WrapError(domain.ErrCodeInvalid, string(action.Type), domain.ErrUnknownAction)
	}
	return handler(store, action)
}
