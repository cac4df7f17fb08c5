package log

import "github.com/sirupsen/logrus"

// developmentFields são os únicos campos mantidos no console local
var developmentFields = map[string]struct{}{
	string(CorrelationIDKey): {},
	logrus.ErrorKey:          {},
	"method":                 {},
	"path":                   {},
	"status_code":            {},
	"duration_ms":            {},
	"item_id":                {},
	"sale_id":                {},
	"count":                  {},
	"total_revenue":          {},
}

// developmentFilter remove da entrada os campos fora de developmentFields.
// O logrus entrega aos hooks uma cópia da entrada, o Logger de origem não
// perde nada.
type developmentFilter struct{}

func (developmentFilter) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (developmentFilter) Fire(entry *logrus.Entry) error {
	for key := range entry.Data {
		if _, ok := developmentFields[key]; !ok {
			delete(entry.Data, key)
		}
	}
	return nil
}
