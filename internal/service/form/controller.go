// Package form holds the state of the add-record form: the draft being
// edited, per-field errors, touched fields, the submit lifecycle and the
// transient notices shown after a submit.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/service/validation"
)

// DefaultNoticeTTL is how long a success notice stays visible.
const DefaultNoticeTTL = 3 * time.Second

// SummaryMessage is shown when a submit is blocked by validation errors.
const SummaryMessage = "Please fix the validation errors before submitting."

// ErrSubmitInProgress is returned by Submit while an earlier submit has not
// finished yet.
var ErrSubmitInProgress = errors.New("submit already in progress")

//go:generate moq -out record_creator_mock_test.go -pkg form . recordCreator

type recordCreator interface {
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
}

// State is the submit lifecycle state.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// NoticeLevel tells success notices from error notices.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message shown after a submit. The zero value means none.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Snapshot is a consistent copy of the controller state for rendering.
type Snapshot struct {
	Kind      domain.Kind
	Draft     domain.Draft
	Errors    map[string]string
	Touched   map[string]bool
	State     State
	CanSubmit bool
	Summary   string
	Notice    Notice
}

// Controller drives one add-record form. All methods are safe for
// concurrent use.
type Controller struct {
	kind      domain.Kind
	engine    *validation.Engine
	store     recordCreator
	clock     clockwork.Clock
	noticeTTL time.Duration
	log       *slog.Logger

	mu          sync.Mutex
	draft       domain.Draft
	errors      map[string]string
	touched     map[string]bool
	state       State
	summary     string
	notice      Notice
	noticeTimer clockwork.Timer
	noticeSeq   uint64
}

// NewController creates a controller for records of kind with a fresh draft.
// A non-positive noticeTTL means DefaultNoticeTTL.
func NewController(
	log *slog.Logger,
	kind domain.Kind,
	engine *validation.Engine,
	store recordCreator,
	clock clockwork.Clock,
	noticeTTL time.Duration,
) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if noticeTTL <= 0 {
		noticeTTL = DefaultNoticeTTL
	}
	c := &Controller{
		kind:      kind,
		engine:    engine,
		store:     store,
		clock:     clock,
		noticeTTL: noticeTTL,
		log:       log.With("service", "form", "kind", kind.String()),
		state:     StateEditing,
	}
	c.resetLocked()
	return c
}

// Change sets a field value and revalidates that field only.
func (c *Controller) Change(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.Values[field] = value
	if msg := c.engine.ValidateField(c.kind, field, value); msg != "" {
		c.errors[field] = msg
	} else {
		delete(c.errors, field)
	}
}

// Blur marks a field as touched so its error becomes visible.
func (c *Controller) Blur(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched[field] = true
}

// VisibleErrors returns the errors of touched fields only.
func (c *Controller) VisibleErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string)
	for f, msg := range c.errors {
		if c.touched[f] {
			out[f] = msg
		}
	}
	return out
}

// Submit validates the whole draft and, when valid, creates the record
// through the store exactly once. Validation failures return a
// *domain.ValidationError without calling the store. Store failures keep
// the draft and set an error notice. The controller is back in the editing
// state when Submit returns.
func (c *Controller) Submit(ctx context.Context) (domain.Record, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	c.clearNoticeLocked()
	errs := c.engine.ValidateRecord(c.draft)
	if len(errs) > 0 {
		c.errors = errs
		c.summary = SummaryMessage
		c.mu.Unlock()
		return nil, domain.ValidationErrorFromMap(errs)
	}
	c.errors = map[string]string{}
	c.summary = ""

	rec, err := c.engine.Build(c.draft)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	created, err := c.store.Create(ctx, rec)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateEditing

	if err != nil {
		c.log.ErrorContext(ctx, "create record failed", slog.String("error", err.Error()))
		c.notice = Notice{
			Level:   NoticeError,
			Message: fmt.Sprintf("Failed to add %s. Please try again.", strings.ToLower(c.kind.Label())),
		}
		return nil, fmt.Errorf("create %s: %w", strings.ToLower(c.kind.Label()), err)
	}

	c.log.InfoContext(ctx, "record added", slog.String("id", created.RecordID().String()))
	c.resetLocked()
	c.showNoticeLocked(Notice{
		Level:   NoticeSuccess,
		Message: c.kind.Label() + " successfully added to your collection!",
	})
	return created, nil
}

// Reset restores the draft defaults and clears errors, touched fields and
// the summary. Notices are left alone.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Kind:      c.kind,
		Draft:     c.draft.Clone(),
		Errors:    maps.Clone(c.errors),
		Touched:   maps.Clone(c.touched),
		State:     c.state,
		CanSubmit: c.state == StateEditing,
		Summary:   c.summary,
		Notice:    c.notice,
	}
}

func (c *Controller) resetLocked() {
	c.draft = domain.NewDraft(c.kind, c.clock.Now())
	c.errors = map[string]string{}
	c.touched = map[string]bool{}
	c.summary = ""
}

// showNoticeLocked sets a success notice and schedules its dismissal.
// A newer notice replaces the timer of an older one.
func (c *Controller) showNoticeLocked(n Notice) {
	c.clearNoticeLocked()
	c.notice = n

	c.noticeSeq++
	seq := c.noticeSeq
	c.noticeTimer = c.clock.AfterFunc(c.noticeTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.noticeSeq == seq {
			c.notice = Notice{}
			c.noticeTimer = nil
		}
	})
}

func (c *Controller) clearNoticeLocked() {
	c.noticeSeq++
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	c.notice = Notice{}
}
