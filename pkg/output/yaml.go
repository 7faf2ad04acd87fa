package output

import (
	"github.com/johnklee/aegis.utils/pkg/batch"
	"gopkg.in/yaml.v3"
)

func marshalYAML(records []batch.Record) ([]byte, error) {
	return yaml.Marshal(records)
}
