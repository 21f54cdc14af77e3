package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommunicationRepo struct {
	pool *pgxpool.Pool
}

func NewCommunicationRepo(pool *pgxpool.Pool) *CommunicationRepo {
	return &CommunicationRepo{pool: pool}
}

func (r *CommunicationRepo) CreateEmail(ctx context.Context, c *models.Communication) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO communications (negotiation_id, status, subject, content, ai_generated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, c.NegotiationID, c.Status, c.Subject, c.Content, c.AIGenerated,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CommunicationRepo) CreateVoice(ctx context.Context, v *models.VoiceCommunication) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO voice_communications (negotiation_id, status, phone_number, transcript, duration_seconds, ai_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, v.NegotiationID, v.Status, v.PhoneNumber, v.Transcript, v.DurationSeconds, v.AIAgent,
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *CommunicationRepo) ListEmailByNegotiation(ctx context.Context, negotiationID uuid.UUID) ([]models.Communication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, negotiation_id, status, subject, content, ai_generated, created_at
		FROM communications WHERE negotiation_id = $1 ORDER BY created_at DESC
	`, negotiationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comms []models.Communication
	for rows.Next() {
		var c models.Communication
		if err := rows.Scan(&c.ID, &c.NegotiationID, &c.Status, &c.Subject, &c.Content,
			&c.AIGenerated, &c.CreatedAt); err != nil {
			return nil, err
		}
		comms = append(comms, c)
	}
	return comms, nil
}

func (r *CommunicationRepo) ListVoiceByNegotiation(ctx context.Context, negotiationID uuid.UUID) ([]models.VoiceCommunication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, negotiation_id, status, phone_number, transcript, duration_seconds, ai_agent, created_at
		FROM voice_communications WHERE negotiation_id = $1 ORDER BY created_at DESC
	`, negotiationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []models.VoiceCommunication
	for rows.Next() {
		var v models.VoiceCommunication
		if err := rows.Scan(&v.ID, &v.NegotiationID, &v.Status, &v.PhoneNumber, &v.Transcript,
			&v.DurationSeconds, &v.AIAgent, &v.CreatedAt); err != nil {
			return nil, err
		}
		calls = append(calls, v)
	}
	return calls, nil
}

// CountByNegotiations returns email and call counts per negotiation id, used
// by performance aggregation.
func (r *CommunicationRepo) CountByNegotiations(ctx context.Context, negotiationIDs []uuid.UUID) (map[uuid.UUID]int, map[uuid.UUID]int, error) {
	emails := make(map[uuid.UUID]int)
	calls := make(map[uuid.UUID]int)
	if len(negotiationIDs) == 0 {
		return emails, calls, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT negotiation_id, count(*) FROM communications
		WHERE negotiation_id = ANY($1) GROUP BY negotiation_id
	`, negotiationIDs)
	if err != nil {
		return nil, nil, err
	}
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			rows.Close()
			return nil, nil, err
		}
		emails[id] = n
	}
	rows.Close()

	rows, err = r.pool.Query(ctx, `
		SELECT negotiation_id, count(*) FROM voice_communications
		WHERE negotiation_id = ANY($1) GROUP BY negotiation_id
	`, negotiationIDs)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, nil, err
		}
		calls[id] = n
	}
	return emails, calls, nil
}
