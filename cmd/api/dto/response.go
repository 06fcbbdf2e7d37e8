package dto

// ErrorResponseDTO is the body of every failed request.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"unauthorized access"`
}

// SuccessResponseDTO answers session issue and logout.
type SuccessResponseDTO struct {
	Success bool `json:"success" example:"true"`
}

// WriteResultDTO keeps the shape of the driver write results the browser client reads.
type WriteResultDTO struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  *int64 `json:"matchedCount,omitempty"`
	ModifiedCount *int64 `json:"modifiedCount,omitempty"`
	UpsertedID    string `json:"upsertedId,omitempty"`
	UpsertedCount *int64 `json:"upsertedCount,omitempty"`
	DeletedCount  *int64 `json:"deletedCount,omitempty"`
}

func InsertResult(id string) WriteResultDTO {
	return WriteResultDTO{Acknowledged: true, InsertedID: id}
}

func UpdateResult(matched, modified int64, upsertedID string) WriteResultDTO {
	var upserted int64
	if upsertedID != "" {
		upserted = 1
	}
	return WriteResultDTO{
		Acknowledged:  true,
		MatchedCount:  &matched,
		ModifiedCount: &modified,
		UpsertedID:    upsertedID,
		UpsertedCount: &upserted,
	}
}

func DeleteResult(deleted int64) WriteResultDTO {
	return WriteResultDTO{Acknowledged: true, DeletedCount: &deleted}
}
