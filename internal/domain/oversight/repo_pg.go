package oversight

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type voiceRepoPG struct{ pool *pgxpool.Pool }

// NewVoiceRepoPG returns the PostgreSQL voice-log repository.
func NewVoiceRepoPG(pool *pgxpool.Pool) VoiceLogRepository { return &voiceRepoPG{pool: pool} }

func (r *voiceRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const voiceCols = `id, doctor_id, patient_id, duration_seconds, direction, outcome, transcript, confidence, created_at`

func scanVoiceLog(row pgx.Row) (*VoiceAgentLog, error) {
	var v VoiceAgentLog
	if err := row.Scan(&v.ID, &v.DoctorID, &v.PatientID, &v.DurationSeconds,
		&v.Direction, &v.Outcome, &v.Transcript, &v.Confidence, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *voiceRepoPG) List(ctx context.Context, limit, offset int) ([]*VoiceAgentLog, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM voice_agent_log`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + voiceCols + ` FROM voice_agent_log ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*VoiceAgentLog
	for rows.Next() {
		v, err := scanVoiceLog(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate voice logs: %w", err)
	}
	return items, total, nil
}

func (r *voiceRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*VoiceAgentLog, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+voiceCols+` FROM voice_agent_log WHERE doctor_id = $1 ORDER BY created_at DESC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*VoiceAgentLog
	for rows.Next() {
		v, err := scanVoiceLog(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

type complianceRepoPG struct{ pool *pgxpool.Pool }

// NewComplianceRepoPG returns the PostgreSQL compliance-report repository.
func NewComplianceRepoPG(pool *pgxpool.Pool) ComplianceRepository {
	return &complianceRepoPG{pool: pool}
}

func (r *complianceRepoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const complianceCols = `id, doctor_id, status, risk_level, resolved, summary, created_at`

func scanReport(row pgx.Row) (*ComplianceReport, error) {
	var c ComplianceReport
	if err := row.Scan(&c.ID, &c.DoctorID, &c.Status, &c.RiskLevel,
		&c.Resolved, &c.Summary, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *complianceRepoPG) List(ctx context.Context, limit, offset int) ([]*ComplianceReport, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM compliance_report`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + complianceCols + ` FROM compliance_report ORDER BY created_at DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*ComplianceReport
	for rows.Next() {
		c, err := scanReport(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate compliance reports: %w", err)
	}
	return items, total, nil
}

func (r *complianceRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*ComplianceReport, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+complianceCols+` FROM compliance_report WHERE doctor_id = $1 ORDER BY created_at DESC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ComplianceReport
	for rows.Next() {
		c, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
