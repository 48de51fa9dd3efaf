package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Appointments and payments are a 1:1 pair; deleting either side must
// remove the other, in both directions.
func TestPaymentAppointmentCascade(t *testing.T) {
	raw, err := Migrations.ReadFile("00001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "appointment_id INTEGER NOT NULL UNIQUE REFERENCES appointments (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "FOREIGN KEY (payment_id) REFERENCES payments (id) ON DELETE CASCADE")
	assert.NotContains(t, schema, "REFERENCES payments (id) ON DELETE SET NULL")
}
