package notification

import (
	"context"
	"text/template"

	"geoalert/config"
	"geoalert/internal/domain/entity"
	"geoalert/internal/errors"
	"geoalert/internal/infra/qrcode"

	"gocloud.dev/blob"
	// Bucket drivers selectable through mailTemplate.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// MailSubject is the subject line of every new-event notice.
const MailSubject = "A new event in your area!"

const defaultMailBody = `Hi {{.Name}},

A new event, "{{.EventName}}", was just published inside your geofence "{{.Geofence}}".

See the details: {{.URL}}
`

// MailData is the data passed to the mail body template.
type MailData struct {
	Name      string
	URL       string
	EventName string
	Geofence  string
}

// NewMailData builds the template data for notice.
func NewMailData(notice entity.Notice, eventURLBase string) MailData {
	return MailData{
		Name:      notice.FirstName,
		URL:       qrcode.EventURL(eventURLBase, notice.EventID),
		EventName: notice.EventName,
		Geofence:  notice.GeofenceName,
	}
}

// LoadMailTemplate returns the body template from mailTemplate.bucketUrl, or the built-in one.
func LoadMailTemplate(ctx context.Context, cfg *config.Config) (*template.Template, error) {
	if cfg.MailTemplate == nil || cfg.MailTemplate.BucketURL == "" {
		return DefaultMailTemplate(), nil
	}

	bucket, err := blob.OpenBucket(ctx, cfg.MailTemplate.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open mail template bucket %s", cfg.MailTemplate.BucketURL)
	}
	defer bucket.Close()

	return loadTemplate(ctx, bucket, cfg.MailTemplate.Key)
}

// DefaultMailTemplate is the built-in plain text body.
func DefaultMailTemplate() *template.Template {
	return template.Must(template.New("new_event").Option("missingkey=error").Parse(defaultMailBody))
}

func loadTemplate(ctx context.Context, bucket *blob.Bucket, key string) (*template.Template, error) {
	raw, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read mail template %s", key)
	}

	tmpl, err := template.New(key).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "parse mail template %s", key)
	}

	return tmpl, nil
}
