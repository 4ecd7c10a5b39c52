package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ccoveille/go-safecast"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord"
	"github.com/bitcoin-sv/bank-wallet/internal/txrecord/store"
)

const (
	postgresDriverName = "postgres"
)

var (
	ErrInvalidRow   = errors.New("invalid transaction record row")
	ErrInvalidLimit = errors.New("invalid list limit")
)

type PostgreSQL struct {
	db *sqlx.DB
}

func New(dbInfo string, idleConns int, maxOpenConns int) (*PostgreSQL, error) {
	db, err := sqlx.Open(postgresDriverName, dbInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres DB: %+v", err)
	}

	db.SetMaxIdleConns(idleConns)
	db.SetMaxOpenConns(maxOpenConns)

	return &PostgreSQL{db: db}, nil
}

func (p *PostgreSQL) Close() error {
	return p.db.Close()
}

type recordRow struct {
	Coin          string              `db:"coin"`
	Hash          string              `db:"hash"`
	BlockHeight   sql.NullInt64       `db:"block_height"`
	Amount        decimal.Decimal     `db:"amount"`
	Timestamp     int64               `db:"timestamp"`
	FromAddresses []byte              `db:"from_addresses"`
	ToAddresses   []byte              `db:"to_addresses"`
	Rate          decimal.NullDecimal `db:"rate"`
	RateCurrency  sql.NullString      `db:"rate_currency"`
}

func (r recordRow) toRecord() (txrecord.TransactionRecord, error) {
	record := txrecord.TransactionRecord{
		Hash:      r.Hash,
		Coin:      coin.Coin(r.Coin),
		Amount:    r.Amount,
		Timestamp: r.Timestamp,
	}

	if r.BlockHeight.Valid {
		record.BlockHeight = &r.BlockHeight.Int64
	}

	if r.Rate.Valid {
		record.Rate = &r.Rate.Decimal
		record.RateCurrency = r.RateCurrency.String
	}

	err := json.Unmarshal(r.FromAddresses, &record.From)
	if err != nil {
		return record, errors.Join(ErrInvalidRow, err)
	}

	err = json.Unmarshal(r.ToAddresses, &record.To)
	if err != nil {
		return record, errors.Join(ErrInvalidRow, err)
	}

	return record, nil
}

const selectColumns = `coin, hash, block_height, amount, timestamp, from_addresses, to_addresses, rate, rate_currency`

func (p *PostgreSQL) Upsert(ctx context.Context, records []txrecord.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	coins := make([]string, len(records))
	hashes := make([]string, len(records))
	blockHeights := make([]sql.NullInt64, len(records))
	amounts := make([]string, len(records))
	timestamps := make([]int64, len(records))
	fromAddresses := make([]string, len(records))
	toAddresses := make([]string, len(records))
	rates := make([]*string, len(records))
	rateCurrencies := make([]*string, len(records))

	for i, r := range records {
		coins[i] = r.Coin.String()
		hashes[i] = r.Hash
		amounts[i] = r.Amount.String()
		timestamps[i] = r.Timestamp

		if r.BlockHeight != nil {
			blockHeights[i] = sql.NullInt64{Int64: *r.BlockHeight, Valid: true}
		}

		if r.Rate != nil {
			rates[i] = ptrTo(r.Rate.String())
			rateCurrencies[i] = ptrTo(r.RateCurrency)
		}

		from, err := marshalAddresses(r.From)
		if err != nil {
			return err
		}
		fromAddresses[i] = from

		to, err := marshalAddresses(r.To)
		if err != nil {
			return err
		}
		toAddresses[i] = to
	}

	const q = `INSERT INTO tx_records (
				coin
				,hash
				,block_height
				,amount
				,timestamp
				,from_addresses
				,to_addresses
				,rate
				,rate_currency
				)
				SELECT
					UNNEST($1::TEXT[])
					,UNNEST($2::TEXT[])
					,UNNEST($3::BIGINT[])
					,UNNEST($4::NUMERIC[])
					,UNNEST($5::BIGINT[])
					,UNNEST($6::JSONB[])
					,UNNEST($7::JSONB[])
					,UNNEST($8::NUMERIC[])
					,UNNEST($9::TEXT[])
				ON CONFLICT (coin, hash) DO UPDATE SET
					block_height = EXCLUDED.block_height
					,amount = EXCLUDED.amount
					,from_addresses = EXCLUDED.from_addresses
					,to_addresses = EXCLUDED.to_addresses
					,rate = CASE WHEN tx_records.timestamp = EXCLUDED.timestamp AND EXCLUDED.rate IS NULL
						THEN tx_records.rate
						ELSE EXCLUDED.rate END
					,rate_currency = CASE WHEN tx_records.timestamp = EXCLUDED.timestamp AND EXCLUDED.rate IS NULL
						THEN tx_records.rate_currency
						ELSE EXCLUDED.rate_currency END
					,timestamp = EXCLUDED.timestamp`

	_, err := p.db.ExecContext(ctx, q,
		pq.Array(coins),
		pq.Array(hashes),
		pq.Array(blockHeights),
		pq.Array(amounts),
		pq.Array(timestamps),
		pq.Array(fromAddresses),
		pq.Array(toAddresses),
		pq.Array(rates),
		pq.Array(rateCurrencies),
	)

	return err
}

func (p *PostgreSQL) Delete(ctx context.Context, c coin.Coin, hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}

	const q = `DELETE FROM tx_records WHERE coin = $1 AND hash = ANY($2::TEXT[])`

	_, err := p.db.ExecContext(ctx, q, c.String(), pq.Array(hashes))
	return err
}

func (p *PostgreSQL) Get(ctx context.Context, c coin.Coin, hash string) (*txrecord.TransactionRecord, error) {
	q := `SELECT ` + selectColumns + ` FROM tx_records WHERE coin = $1 AND hash = $2`

	var row recordRow
	err := p.db.GetContext(ctx, &row, q, c.String(), hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Join(store.ErrNotFound, fmt.Errorf("hash: %s", hash))
		}
		return nil, err
	}

	record, err := row.toRecord()
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (p *PostgreSQL) List(ctx context.Context, c coin.Coin, fromHash *string, limit int) ([]txrecord.TransactionRecord, error) {
	var rows []recordRow

	limit64, err := safecast.ToInt64(limit)
	if err != nil {
		return nil, errors.Join(ErrInvalidLimit, err)
	}
	limitArg := sql.NullInt64{Int64: limit64, Valid: limit > 0}

	if fromHash == nil {
		q := `SELECT ` + selectColumns + ` FROM tx_records
			WHERE coin = $1
			ORDER BY timestamp DESC, hash DESC
			LIMIT $2`
		err = p.db.SelectContext(ctx, &rows, q, c.String(), limitArg)
	} else {
		q := `SELECT ` + selectColumns + ` FROM tx_records t
			WHERE t.coin = $1
			AND (t.timestamp, t.hash) < (SELECT c.timestamp, c.hash FROM tx_records c WHERE c.coin = $1 AND c.hash = $2)
			ORDER BY t.timestamp DESC, t.hash DESC
			LIMIT $3`
		err = p.db.SelectContext(ctx, &rows, q, c.String(), *fromHash, limitArg)
	}
	if err != nil {
		return nil, err
	}

	return toRecords(rows)
}

// NonFilledRecords returns records with a timestamp but without a rate in currencyCode.
func (p *PostgreSQL) NonFilledRecords(ctx context.Context, currencyCode string) ([]txrecord.TransactionRecord, error) {
	q := `SELECT ` + selectColumns + ` FROM tx_records
		WHERE timestamp <> 0
		AND (rate IS NULL OR rate_currency IS DISTINCT FROM $1)
		ORDER BY hash`

	var rows []recordRow
	err := p.db.SelectContext(ctx, &rows, q, currencyCode)
	if err != nil {
		return nil, err
	}

	return toRecords(rows)
}

func (p *PostgreSQL) SetRate(ctx context.Context, c coin.Coin, hash string, currencyCode string, rate decimal.Decimal) error {
	const q = `UPDATE tx_records SET rate = $3, rate_currency = $4 WHERE coin = $1 AND hash = $2`

	result, err := p.db.ExecContext(ctx, q, c.String(), hash, rate, currencyCode)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.Join(store.ErrNotFound, fmt.Errorf("hash: %s", hash))
	}

	return nil
}

func (p *PostgreSQL) ClearRates(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `UPDATE tx_records SET rate = NULL, rate_currency = NULL WHERE rate IS NOT NULL`)
	return err
}

func toRecords(rows []recordRow) ([]txrecord.TransactionRecord, error) {
	records := make([]txrecord.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func marshalAddresses(addresses []txrecord.TransactionAddress) (string, error) {
	if addresses == nil {
		addresses = []txrecord.TransactionAddress{}
	}

	b, err := json.Marshal(addresses)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func ptrTo[T any](v T) *T {
	return &v
}
