package converter

import (
	"encoding/json"

	"raffle-draw/internal/domain/raffle"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/pgconv"
)

func RecordToInsertParams(rec *raffle.VerificationRecord) (sqlc.InsertVerificationRecordParams, error) {
	var (
		params sqlc.InsertVerificationRecordParams
		err    error
	)

	params.DrawID = rec.DrawID
	params.RaffleKey = rec.RaffleKey
	if params.Request, err = json.Marshal(rec.Request); err != nil {
		return params, errs.Wrap(err, "marshal request")
	}
	if params.Roster, err = json.Marshal(nonNil(rec.Roster)); err != nil {
		return params, errs.Wrap(err, "marshal roster")
	}
	if params.Winners, err = json.Marshal(nonNil(rec.Winners)); err != nil {
		return params, errs.Wrap(err, "marshal winners")
	}
	if params.Numbers, err = json.Marshal(nonNil(rec.Proof.Numbers)); err != nil {
		return params, errs.Wrap(err, "marshal numbers")
	}
	if params.SourceInfo, err = json.Marshal(rec.Source); err != nil {
		return params, errs.Wrap(err, "marshal source info")
	}

	params.SerialNumber = rec.Proof.SerialNumber
	params.KeyID = rec.Proof.KeyID
	params.HashedApiKey = rec.Proof.HashedAPIKey
	params.RandomPayload = []byte(rec.Proof.Random)
	params.Signature = rec.Proof.Signature
	params.CompletionTime = rec.Proof.CompletionTime
	params.Requester = rec.Request.Requester.ID
	params.CreatedAt = pgconv.TimeToPgtype(rec.CreatedAt)
	return params, nil
}

func RecordFromRow(row sqlc.VerificationRecords) (*raffle.VerificationRecord, error) {
	rec := &raffle.VerificationRecord{
		DrawID:    row.DrawID,
		RaffleKey: row.RaffleKey,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}

	if err := json.Unmarshal(row.Request, &rec.Request); err != nil {
		return nil, errs.Wrap(err, "unmarshal request")
	}
	if err := json.Unmarshal(row.Roster, &rec.Roster); err != nil {
		return nil, errs.Wrap(err, "unmarshal roster")
	}
	if err := json.Unmarshal(row.Winners, &rec.Winners); err != nil {
		return nil, errs.Wrap(err, "unmarshal winners")
	}
	if err := json.Unmarshal(row.Numbers, &rec.Proof.Numbers); err != nil {
		return nil, errs.Wrap(err, "unmarshal numbers")
	}
	if err := json.Unmarshal(row.SourceInfo, &rec.Source); err != nil {
		return nil, errs.Wrap(err, "unmarshal source info")
	}

	rec.Proof.RangeLow = 1
	rec.Proof.RangeHigh = rec.Request.TotalSlots
	rec.Proof.SerialNumber = row.SerialNumber
	rec.Proof.KeyID = row.KeyID
	rec.Proof.HashedAPIKey = row.HashedApiKey
	rec.Proof.Random = json.RawMessage(row.RandomPayload)
	rec.Proof.Signature = row.Signature
	rec.Proof.CompletionTime = row.CompletionTime
	return rec, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
