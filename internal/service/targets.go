package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/wire"
	"github.com/MKhiriev/go-eas-sync/models"
)

// NewTarget returns the sync target for the collection's class. Unknown
// classes are synchronized as mail.
func NewTarget(collection *models.Collection, storages *store.ClientStorages, parser CollectionResponseParser) Target {
	base := baseTarget{
		collection: collection,
		items:      storages.ItemRepository,
		parser:     parser,
	}

	switch collection.Class {
	case models.ClassContacts:
		return &contactsTarget{baseTarget: base}
	case models.ClassCalendar:
		return &calendarTarget{baseTarget: base}
	default:
		return &emailTarget{baseTarget: base}
	}
}

// baseTarget carries the behavior shared by all classes. Pending changes
// written into a request are remembered until the response is applied so
// that they are dequeued together with the new sync key.
type baseTarget struct {
	collection *models.Collection
	items      store.ItemRepository
	parser     CollectionResponseParser

	sent []int64
}

func (t *baseTarget) appendChanges(ctx context.Context, b wire.Builder, accept func(models.Change) bool) error {
	changes, err := t.items.PendingChanges(ctx, t.collection.ID)
	if err != nil {
		return fmt.Errorf("load pending changes: %w", err)
	}

	t.sent = t.sent[:0]
	opened := false
	for _, change := range changes {
		if !accept(change) {
			continue
		}
		if !opened {
			b.Start("Commands")
			opened = true
		}
		writeChange(b, change)
		t.sent = append(t.sent, change.ID)
	}
	if opened {
		b.End()
	}

	return nil
}

func writeChange(b wire.Builder, change models.Change) {
	b.Start(string(change.Kind))
	switch change.Kind {
	case models.ChangeAdd:
		b.Data("ClientId", change.ClientID)
	default:
		b.Data("ServerId", change.ServerID)
	}
	if change.Kind != models.ChangeDelete && len(change.Data) > 0 {
		b.Start("ApplicationData").Text(string(change.Data)).End()
	}
	b.End()
}

func (t *baseTarget) ApplyServerResponse(ctx context.Context, body []byte) (bool, error) {
	return t.parser.ParseCollectionResponse(ctx, t.collection, body, t.sent)
}

func (t *baseTarget) Cleanup(ctx context.Context) error {
	t.sent = t.sent[:0]
	return nil
}

type emailTarget struct {
	baseTarget
}

func (t *emailTarget) ClassName() string {
	return string(models.ClassEmail)
}

// AppendLocalChanges skips Add: new mail leaves through SendMail, never
// through Sync.
func (t *emailTarget) AppendLocalChanges(ctx context.Context, b wire.Builder) error {
	return t.appendChanges(ctx, b, func(c models.Change) bool {
		return c.Kind != models.ChangeAdd
	})
}

type contactsTarget struct {
	baseTarget
}

func (t *contactsTarget) ClassName() string {
	return string(models.ClassContacts)
}

func (t *contactsTarget) AppendLocalChanges(ctx context.Context, b wire.Builder) error {
	return t.appendChanges(ctx, b, acceptAll)
}

type calendarTarget struct {
	baseTarget
}

func (t *calendarTarget) ClassName() string {
	return string(models.ClassCalendar)
}

func (t *calendarTarget) AppendLocalChanges(ctx context.Context, b wire.Builder) error {
	return t.appendChanges(ctx, b, acceptAll)
}

func acceptAll(models.Change) bool { return true }
