package datastore

import (
	"errors"
	"io"
	"os"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/models"
	"github.com/parquet-go/parquet-go"
)

// ReadLedger loads every record of a ledger file
func ReadLedger(filePath string) ([]models.LedgerRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to open ledger file: "+filePath)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[models.LedgerRecord](file)
	defer reader.Close()

	records := make([]models.LedgerRecord, 0, reader.NumRows())
	for {
		batch := make([]models.LedgerRecord, 64)
		n, err := reader.Read(batch)
		records = append(records, batch[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, common.WrapError(err, "failed to read ledger rows from "+filePath)
		}
		if n == 0 {
			break
		}
	}

	return records, nil
}
