package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/port"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// cartRepository keeps one cart per owner in Postgres, one row per line.
// Save replaces the owner's rows wholesale inside a transaction, matching
// the engine's full-reserialization-per-mutation contract.
type cartRepository struct {
	pool    *pgxpool.Pool
	ownerID string
}

func NewCart(pool *pgxpool.Pool, ownerID string) (port.CartStore, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &cartRepository{
		pool:    pool,
		ownerID: ownerID,
	}, nil
}

func (r *cartRepository) Load(ctx context.Context) ([]domain.CartLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT line_id, item_id, name, category, price_amount, price_currency, config, quantity
		FROM cart_lines
		WHERE owner_id = $1
		ORDER BY position
	`, r.ownerID)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var lines []domain.CartLine

	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanCartLine: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return lines, nil
}

func (r *cartRepository) Save(ctx context.Context, lines []domain.CartLine) error {
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE owner_id = $1`, r.ownerID); err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec delete: %w", err)
		}

		for position, line := range lines {
			config, err := json.Marshal(line.Config)
			if err != nil {
				return struct{}{}, fmt.Errorf("json.Marshal config: %w", err)
			}

			_, err = tx.Exec(ctx, `
				INSERT INTO cart_lines
					(owner_id, line_id, item_id, name, category, price_amount, price_currency, config, quantity, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, r.ownerID, line.ID, line.ItemID, line.Name, string(line.Category),
				line.UnitPrice.Amount, line.UnitPrice.Currency.String(), config, line.Quantity, position)
			if err != nil {
				return struct{}{}, fmt.Errorf("tx.Exec insert: %w", err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func scanCartLine(rows pgx.Rows) (domain.CartLine, error) {
	var (
		line          domain.CartLine
		lineID        uuid.UUID
		category      string
		priceAmount   decimal.Decimal
		priceCurrency string
		config        []byte
	)

	err := rows.Scan(&lineID, &line.ItemID, &line.Name, &category,
		&priceAmount, &priceCurrency, &config, &line.Quantity)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("rows.Scan: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(priceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
	}

	if err := json.Unmarshal(config, &line.Config); err != nil {
		return domain.CartLine{}, fmt.Errorf("json.Unmarshal config: %w", err)
	}

	line.ID = lineID
	line.Category = domain.Category(category)
	line.UnitPrice = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

	return line, nil
}
