package output

import (
	"encoding/json"

	"github.com/johnklee/aegis.utils/pkg/batch"
)

func marshalJSON(records []batch.Record) ([]byte, error) {
	return json.MarshalIndent(records, "", "    ")
}
