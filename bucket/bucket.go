package bucket

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jsphweid/pnote/constants"
)

// IsURL reports whether path refers to an S3 object rather than a
// local file.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

// FetchMidi downloads the MIDI object referenced by an s3://bucket/key
// URL and returns its raw bytes.
func FetchMidi(rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid s3 url %q: %w", rawURL, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 url %q, expected s3://bucket/key", rawURL)
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(constants.GetAwsRegion()),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create an S3 session: %w", err)
	}

	client := s3.New(sess)
	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch %v: %w", rawURL, err)
	}
	defer out.Body.Close()

	dat, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read %v: %w", rawURL, err)
	}
	return dat, nil
}
