package sql

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_batch.sql
var RegisterBatch string

//go:embed queries/lookup_batch.sql
var LookupBatch string

//go:embed queries/update_batch_status.sql
var UpdateBatchStatus string

//go:embed queries/finalize_batch.sql
var FinalizeBatch string

//go:embed queries/delete_batch_rows.sql
var DeleteBatchRows string
