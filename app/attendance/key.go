package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/models"
)

// Record is one marked session, decoded from a store key.
type Record struct {
	MIS       string
	Date      string
	Subject   string
	Type      string
	StartTime string
}

// BuildKey encodes a marked session as the store's flat key:
// mis_date_subject_type_start. The delimiter is part of the external
// store format and cannot change without migrating existing rows.
func BuildKey(mis string, date time.Time, subject string, sessionType models.SessionType, startTime string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s", mis, date.Format("2006-01-02"), subject, sessionType, startTime)
}

// ParseKey decodes a store key back into its fields. Subject names may
// themselves contain underscores, so the fixed fields are taken from
// both ends and the middle is rejoined as the subject. A subject that
// ends in something shaped like a session type would still parse
// wrong; the format predates this code and is kept as is.
func ParseKey(key string) (Record, error) {
	parts := strings.Split(key, "_")
	if len(parts) < 5 {
		return Record{}, fmt.Errorf("malformed attendance key: %q", key)
	}
	return Record{
		MIS:       parts[0],
		Date:      parts[1],
		Subject:   strings.Join(parts[2:len(parts)-2], "_"),
		Type:      parts[len(parts)-2],
		StartTime: parts[len(parts)-1],
	}, nil
}
