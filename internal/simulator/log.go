package simulator

import (
	"go.uber.org/zap"

	"github.com/wyfcoding/mcaad/pkg/runid"
)

// logFields builds the fields for the opening log entry of one
// top-level MCSimul*/MCParallelSimul* call: a fresh run ID, the path
// count and whether the call is parallel. The closing "done" entry does
// not carry them.
func logFields(nPath int, parallel bool) []zap.Field {
	return []zap.Field{
		zap.Stringer("run_id", runid.NewRunID()),
		zap.Int("n_path", nPath),
		zap.Bool("parallel", parallel),
	}
}
