package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Subscription plans. The plan gates AI-minute and message quotas enforced
// by the upstream billing system; this service only records usage.
const (
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

var ValidPlans = map[string]bool{
	PlanBasic:      true,
	PlanPro:        true,
	PlanEnterprise: true,
}

// Doctor maps to the doctor table. Rows are created through the provisioning
// flow and are read-mostly afterwards; usage counters are bumped by the
// voice-agent backend, not this API.
type Doctor struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	Name          string    `db:"name" json:"name"`
	Phone         string    `db:"phone" json:"phone"`
	Country       string    `db:"country" json:"country"`
	Timezone      string    `db:"timezone" json:"timezone"`
	Plan          string    `db:"plan" json:"plan"`
	AIMinutesUsed int       `db:"ai_minutes_used" json:"ai_minutes_used"`
	MessagesUsed  int       `db:"messages_used" json:"messages_used"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// SearchFields enumerates the fields the free-text filter matches against.
func (d *Doctor) SearchFields() []string {
	return []string{d.Name, d.Email, d.Phone, d.Country}
}

// Credentials is the transient result of provisioning a doctor login. It is
// returned once and never stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
