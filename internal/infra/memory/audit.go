package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// AuditLog stores audit rows for STORAGE=memory.
type AuditLog struct {
	s *Store
}

func (s *Store) AuditLog() *AuditLog { return &AuditLog{s: s} }

func (a *AuditLog) Log(ctx context.Context, ev audit.Event) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	row := audit.Entry(ev)
	a.s.nextAuditID++
	row.ID = a.s.nextAuditID
	row.CreatedAt = a.s.now()
	a.s.audit = append(a.s.audit, row)
	return nil
}

func (a *AuditLog) List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	matched := make([]models.AuditLog, 0)
	for _, row := range a.s.audit {
		if q.Action != "" && row.Action != q.Action {
			continue
		}
		if q.Entity != "" && row.Entity != q.Entity {
			continue
		}
		if q.From != nil && row.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && row.CreatedAt.After(*q.To) {
			continue
		}
		matched = append(matched, row)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if q.Limit <= 0 {
		return matched, total, nil
	}
	if q.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], total, nil
}

var _ audit.Sink = (*AuditLog)(nil)
var _ audit.Reader = (*AuditLog)(nil)
