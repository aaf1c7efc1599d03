package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vivamau/diet-tracker/models"
)

// ResolveState is a state of the barcode resolution flow.
type ResolveState string

const (
	StateIdle            ResolveState = "idle"
	StateSearchingLocal  ResolveState = "searchingLocal"
	StateFound           ResolveState = "found"
	StateSearchingRemote ResolveState = "searchingRemote"
	StateAutoCreated     ResolveState = "autoCreated"
	StateNotFound        ResolveState = "notFound"
	StateError           ResolveState = "error"
)

// ProductLookup is the remote side of the resolution flow.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*FoodItemInput, error)
}

// BarcodeResolver drives the barcode resolution state machine:
//
//	idle → searchingLocal → {found, searchingRemote}
//	searchingRemote → {autoCreated, notFound, error}
//
// A local hit never triggers a remote call. A remote hit auto-creates the
// food item through the normal create path.
type BarcodeResolver struct {
	foods  *FoodService
	remote ProductLookup

	mu    sync.Mutex
	state ResolveState
}

func NewBarcodeResolver(foods *FoodService, remote ProductLookup) *BarcodeResolver {
	return &BarcodeResolver{foods: foods, remote: remote, state: StateIdle}
}

// ResolveResult is the terminal outcome of one resolution.
type ResolveResult struct {
	State    ResolveState     `json:"state"`
	FoodItem *models.FoodItem `json:"foodItem,omitempty"`
}

// State reports the resolver's current state.
func (r *BarcodeResolver) State() ResolveState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *BarcodeResolver) transition(next ResolveState) {
	r.mu.Lock()
	slog.Debug("barcode resolver transition", "from", r.state, "to", next)
	r.state = next
	r.mu.Unlock()
}

// Resolve runs the flow for one barcode and returns to idle afterwards.
// The returned error carries the not-found/upstream classification for the
// notFound and error states.
func (r *BarcodeResolver) Resolve(ctx context.Context, barcode string) (ResolveResult, error) {
	if barcode == "" {
		return ResolveResult{State: StateIdle}, validationError("barcode is required")
	}
	defer r.transition(StateIdle)

	r.transition(StateSearchingLocal)
	item, err := r.foods.GetByBarcode(barcode)
	if err == nil {
		r.transition(StateFound)
		return ResolveResult{State: StateFound, FoodItem: item}, nil
	}
	if !IsNotFound(err) {
		r.transition(StateError)
		return ResolveResult{State: StateError}, err
	}

	r.transition(StateSearchingRemote)
	in, err := r.remote.Lookup(ctx, barcode)
	if err != nil {
		if IsNotFound(err) {
			r.transition(StateNotFound)
			return ResolveResult{State: StateNotFound}, err
		}
		r.transition(StateError)
		return ResolveResult{State: StateError}, err
	}

	created, err := r.foods.Create(*in)
	if err != nil {
		r.transition(StateError)
		return ResolveResult{State: StateError}, err
	}
	r.transition(StateAutoCreated)
	slog.Info("food item auto-created from barcode", "barcode", barcode, "id", created.ID)
	return ResolveResult{State: StateAutoCreated, FoodItem: created}, nil
}
