package catalog

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipekit/recipebox/internal/logging"
	"github.com/recipekit/recipebox/internal/model"
)

// Snapshot is the immutable view of the catalog handed to the UI after each
// state change. Recipes always reflects the currently published catalog; a
// failed load keeps the previously published recipes.
type Snapshot struct {
	State     model.LoadState
	Recipes   []model.Recipe
	Err       error
	AttemptID string
}

// Service handles catalog load operations and owns the published slot.
type Service struct {
	source Source

	mu        sync.RWMutex
	state     model.LoadState
	published []model.Recipe
	lastErr   error

	onUpdate func(Snapshot) // callback for UI updates
}

// NewService creates a new catalog service reading from the given source.
func NewService(source Source) *Service {
	return &Service{
		source: source,
		state:  model.LoadStateNotStarted,
	}
}

// SetUpdateCallback sets the callback invoked after every state change.
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Load runs a full load attempt: open the named resource, decode, filter,
// publish. A failure of any stage is terminal for the attempt and leaves the
// previously published catalog untouched. A fresh success replaces the
// published catalog wholesale.
func (s *Service) Load(resourceName string) error {
	attemptID := uuid.New().String()

	s.setState(model.LoadStateLoading, nil, attemptID)

	data, err := s.source.Open(resourceName, CatalogExtension)
	if err != nil {
		logging.L().Error("catalog resource not readable",
			zap.String("resource", resourceName),
			zap.String("attempt_id", attemptID),
			zap.Error(err),
		)
		s.setState(model.LoadStateFailed, err, attemptID)
		return err
	}

	collection, err := Decode(data)
	if err != nil {
		decodeErr := &DecodeError{Resource: resourceName, Err: err}
		logging.L().Error("catalog document malformed",
			zap.String("resource", resourceName),
			zap.String("attempt_id", attemptID),
			zap.Error(decodeErr),
		)
		s.setState(model.LoadStateFailed, decodeErr, attemptID)
		return decodeErr
	}

	recipes := Filter(collection)

	s.mu.Lock()
	s.published = recipes
	s.mu.Unlock()

	logging.L().Info("catalog published",
		zap.String("resource", resourceName),
		zap.String("attempt_id", attemptID),
		zap.Int("total", len(collection.Recipes)),
		zap.Int("displayable", len(recipes)),
	)

	s.setState(model.LoadStatePublished, nil, attemptID)
	return nil
}

// LoadAsync runs Load off the calling path. The result is delivered through
// the update callback only; callers that need the error use Load directly.
func (s *Service) LoadAsync(resourceName string) {
	go func() {
		_ = s.Load(resourceName)
	}()
}

// Recipes returns the currently published catalog in document order.
func (s *Service) Recipes() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := make([]model.Recipe, len(s.published))
	copy(recipes, s.published)
	return recipes
}

// RecipeByID returns the published recipe with the given id. When ids are
// duplicated in the source document the first match wins.
func (s *Service) RecipeByID(id string) (model.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, recipe := range s.published {
		if recipe.ID == id {
			return recipe, true
		}
	}
	return model.Recipe{}, false
}

// State returns the state of the most recent load attempt.
func (s *Service) State() model.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastError returns the error of the most recent failed load, or nil.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// IsNotFound reports whether err means the bundled resource is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// IsDecodeError reports whether err is a schema/parse failure.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// setState updates the lifecycle state and notifies the UI.
func (s *Service) setState(state model.LoadState, err error, attemptID string) {
	s.mu.Lock()
	s.state = state
	if state == model.LoadStateLoading || state == model.LoadStatePublished {
		s.lastErr = nil
	} else if err != nil {
		s.lastErr = err
	}
	callback := s.onUpdate
	recipes := make([]model.Recipe, len(s.published))
	copy(recipes, s.published)
	s.mu.Unlock()

	if callback != nil {
		callback(Snapshot{
			State:     state,
			Recipes:   recipes,
			Err:       err,
			AttemptID: attemptID,
		})
	}
}
