package appointment

import "github.com/medsched/hospital-scheduler/internal/audit"

// Auditor is satisfied by *audit.Dispatcher. Dispatching is
// fire-and-forget; use cases never observe audit failures.
type Auditor interface {
	Dispatch(audit.Entry)
}
