// Package parts owns the in-memory part collection and funnels every
// mutation through a write to the persistent store. Views receive
// snapshots and request changes through the manager; nothing else
// touches the persisted state.
package parts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/partdeck/partdeck/internal/kv"
	"github.com/partdeck/partdeck/internal/model"
)

// Manager is the record collection manager. All operations are
// synchronous and immediately consistent: a List following a mutation
// reflects it.
type Manager struct {
	store *kv.Store

	mu    sync.Mutex
	parts []model.Part

	now func() time.Time
}

// NewManager loads the stored collection. A missing key means a fresh
// install and yields an empty collection.
func NewManager(store *kv.Store) *Manager {
	m := &Manager{store: store, now: time.Now}
	store.Read(kv.KeyParts, &m.parts)
	return m
}

// persist writes the whole collection through the store. Callers hold mu.
func (m *Manager) persist(ctx context.Context) {
	m.store.Write(ctx, kv.KeyParts, m.parts)
}

func (m *Manager) build(d model.Draft, now time.Time) model.Part {
	status := d.QualityStatus
	if !model.ValidStatus(status) {
		status = model.StatusPending
	}
	return model.Part{
		ID:                    uuid.NewString(),
		PartNumber:            d.PartNumber,
		PartDescription:       d.PartDescription,
		Supplier:              d.Supplier,
		DeliveryDate:          d.DeliveryDate,
		BatchNumberBox:        d.BatchNumberBox,
		BatchDateCode:         d.BatchDateCode,
		Count:                 d.Count,
		ExpectedCount:         d.ExpectedCount,
		SAPPlaced:             d.SAPPlaced,
		SAPReleased:           d.SAPReleased,
		Comments:              d.Comments,
		Notes:                 d.Notes,
		InspectorName:         d.InspectorName,
		InspectionDate:        d.InspectionDate,
		QualityStatus:         status,
		PurchaseOrder:         d.PurchaseOrder,
		StorageLocation:       d.StorageLocation,
		ExpiryDate:            d.ExpiryDate,
		CertificateCompliance: d.CertificateCompliance,
		NonConformance:        d.NonConformance,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// Add creates a record from the draft, assigns a fresh ID and equal
// created/updated timestamps, and prepends it (newest first).
func (m *Manager) Add(ctx context.Context, d model.Draft) model.Part {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.build(d, m.now().UTC())
	m.parts = append([]model.Part{p}, m.parts...)
	m.persist(ctx)
	return p
}

// AddBatch creates one record per draft and prepends them as a block
// ahead of the existing records, preserving the input order among
// themselves, with a single persist for the whole batch.
func (m *Manager) AddBatch(ctx context.Context, drafts []model.Draft) []model.Part {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	batch := make([]model.Part, 0, len(drafts))
	for _, d := range drafts {
		batch = append(batch, m.build(d, now))
	}
	m.parts = append(batch, m.parts...)
	m.persist(ctx)
	return batch
}

// Update merges the patch onto the matching record and refreshes its
// update timestamp. An unknown id is a silent no-op; the collection is
// persisted either way.
func (m *Manager) Update(ctx context.Context, id string, patch Patch) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for i := range m.parts {
		if m.parts[i].ID == id {
			patch.apply(&m.parts[i])
			m.parts[i].UpdatedAt = m.now().UTC()
			found = true
			break
		}
	}
	m.persist(ctx)
	return found
}

// ToggleFlag flips one of the SAP workflow flags on the matching record,
// refreshing its update timestamp.
func (m *Manager) ToggleFlag(ctx context.Context, id string, released bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.parts {
		if m.parts[i].ID == id {
			if released {
				m.parts[i].SAPReleased = !m.parts[i].SAPReleased
			} else {
				m.parts[i].SAPPlaced = !m.parts[i].SAPPlaced
			}
			m.parts[i].UpdatedAt = m.now().UTC()
			m.persist(ctx)
			return true
		}
	}
	return false
}

// Delete removes the matching record. Deletion is immediate and
// permanent; an unknown id is a no-op.
func (m *Manager) Delete(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.parts {
		if m.parts[i].ID == id {
			m.parts = append(m.parts[:i], m.parts[i+1:]...)
			m.persist(ctx)
			return true
		}
	}
	return false
}

// List returns a snapshot copy of the collection, newest first.
func (m *Manager) List() []model.Part {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Part, len(m.parts))
	copy(out, m.parts)
	return out
}

// Get returns the record with the given id.
func (m *Manager) Get(id string) (model.Part, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.parts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Part{}, false
}
