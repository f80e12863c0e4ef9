package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tablePartitions = "cache_partitions"
	tableEntries    = "cache_entries"
	tableSlots      = "kv_slots"
)

// psql is the statement builder for SQLite: question mark placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var entryColumns = []string{
	"partition",
	"request_key",
	"method",
	"url",
	"status",
	"content_type",
	"headers",
	"payload",
	"captured_at",
}

// storedEntry is a cache entry in its on-disk form: headers JSON-encoded and
// payload compressed.
type storedEntry struct {
	Partition   string
	Key         string
	Method      string
	URL         string
	StatusCode  int
	ContentType string
	Headers     []byte
	Payload     []byte
	CapturedAt  time.Time
}

func buildInsertPartitionQuery(name string) (string, []any, error) {
	return psql.Insert(tablePartitions).
		Options("OR IGNORE").
		Columns("name").
		Values(name).
		ToSql()
}

func buildUpsertEntryQuery(e storedEntry) (string, []any, error) {
	return psql.Insert(tableEntries).
		Options("OR REPLACE").
		Columns(entryColumns...).
		Values(e.Partition, e.Key, e.Method, e.URL, e.StatusCode, e.ContentType, e.Headers, e.Payload, e.CapturedAt).
		ToSql()
}

func buildSelectEntryQuery(partition, key string) (string, []any, error) {
	return psql.Select(entryColumns...).
		From(tableEntries).
		Where("partition = ? AND request_key = ?", partition, key).
		ToSql()
}

func buildSelectKeysQuery(partition string) (string, []any, error) {
	return psql.Select("request_key").
		From(tableEntries).
		Where(sq.Eq{"partition": partition}).
		OrderBy("request_key ASC").
		ToSql()
}

func buildDeleteEntryQuery(partition, key string) (string, []any, error) {
	return psql.Delete(tableEntries).
		Where("partition = ? AND request_key = ?", partition, key).
		ToSql()
}

func buildSelectPartitionsQuery() (string, []any, error) {
	return psql.Select("name").
		From(tablePartitions).
		OrderBy("name ASC").
		ToSql()
}

func buildPartitionExistsQuery(name string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tablePartitions).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildDeletePartitionEntriesQuery(name string) (string, []any, error) {
	return psql.Delete(tableEntries).
		Where(sq.Eq{"partition": name}).
		ToSql()
}

func buildDeletePartitionQuery(name string) (string, []any, error) {
	return psql.Delete(tablePartitions).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSelectSlotQuery(slot string) (string, []any, error) {
	return psql.Select("value").
		From(tableSlots).
		Where(sq.Eq{"slot": slot}).
		ToSql()
}

func buildSelectAllSlotsQuery() (string, []any, error) {
	return psql.Select("slot", "value").
		From(tableSlots).
		OrderBy("slot ASC").
		ToSql()
}

func buildUpsertSlotQuery(slot string, value []byte, updatedAt time.Time) (string, []any, error) {
	return psql.Insert(tableSlots).
		Options("OR REPLACE").
		Columns("slot", "value", "updated_at").
		Values(slot, value, updatedAt).
		ToSql()
}

func buildDeleteSlotQuery(slot string) (string, []any, error) {
	return psql.Delete(tableSlots).
		Where(sq.Eq{"slot": slot}).
		ToSql()
}
