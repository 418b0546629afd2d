package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JOstapjuk/class-clients/internal/client"
	"github.com/JOstapjuk/class-clients/internal/logger"
)

// ReadClients reads client records from the file at path. Each line is:
// name,bank,account_age,starting_amount,current_amount
// No header row, no quoting; amounts may be negative, account_age is a
// positive integer.
//
// A missing file is reported with a notice and yields an empty slice, so
// downstream queries degrade to empty/none instead of failing the process.
func ReadClients(path string) []client.Client {
	f, err := os.Open(path)
	if err != nil {
		logger.Get().Warn("clients file not found", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 5

	var out []client.Client
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Get().Warn("skipping malformed line", "path", path, "err", err)
			continue
		}
		c, err := parseRecord(rec)
		if err != nil {
			logger.Get().Warn("skipping malformed line", "path", path, "err", err)
			continue
		}
		out = append(out, c)
	}
	return out
}

func parseRecord(fields []string) (client.Client, error) {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	age, err := strconv.Atoi(fields[2])
	if err != nil {
		return client.Client{}, fmt.Errorf("account_age parse: %w", err)
	}
	starting, err := strconv.Atoi(fields[3])
	if err != nil {
		return client.Client{}, fmt.Errorf("starting_amount parse: %w", err)
	}
	current, err := strconv.Atoi(fields[4])
	if err != nil {
		return client.Client{}, fmt.Errorf("current_amount parse: %w", err)
	}
	return client.Client{
		Name:           fields[0],
		Bank:           fields[1],
		AccountAge:     age,
		StartingAmount: starting,
		CurrentAmount:  current,
	}, nil
}
