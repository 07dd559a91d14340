package notification

import (
	"bytes"
	"context"
	"testing"

	"geoalert/config"
	"geoalert/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var aliceNotice = entity.Notice{
	EventID:      15,
	EventName:    "Food Fair",
	RecipientID:  4,
	Email:        "alice@example.com",
	FirstName:    "Alice",
	GeofenceName: "Home",
}

func TestDefaultMailTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultMailTemplate().Execute(&buf, NewMailData(aliceNotice, "http://localhost:3000")))

	body := buf.String()
	assert.Contains(t, body, "Hi Alice,")
	assert.Contains(t, body, `"Food Fair"`)
	assert.Contains(t, body, `"Home"`)
	assert.Contains(t, body, "http://localhost:3000/events/15")
}

func TestLoadMailTemplate_DefaultWithoutBucket(t *testing.T) {
	tmpl, err := LoadMailTemplate(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "new_event", tmpl.Name())
}

func TestLoadTemplate_FromBucket(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "custom.txt", []byte("{{.EventName}} near {{.Geofence}}"), nil))

	tmpl, err := loadTemplate(ctx, bucket, "custom.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, NewMailData(aliceNotice, "")))
	assert.Equal(t, "Food Fair near Home", buf.String())
}

func TestLoadTemplate_Errors(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := loadTemplate(ctx, bucket, "missing.txt")
	assert.Error(t, err)

	require.NoError(t, bucket.WriteAll(ctx, "broken.txt", []byte("{{.EventName"), nil))
	_, err = loadTemplate(ctx, bucket, "broken.txt")
	assert.Error(t, err)
}
