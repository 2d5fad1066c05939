package attachment

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/sendgrid/pkg/mailer"
)

// Size limits. DefaultMaxSize is the per-file cap used by sources when none
// is configured; MaxTotalSize caps the files returned by one LoadAll call,
// matching SendGrid's 30MB limit for a whole message.
const (
	DefaultMaxSize = 30 << 20
	MaxTotalSize   = 30 << 20
)

// Source resolves a reference (object key, URL) into file content.
type Source interface {
	Open(ctx context.Context, ref string) (*File, error)
}

// File is a loaded attachment, not yet encoded.
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}

// MailerAttachment converts the file into a mailer.Attachment.
func (f *File) MailerAttachment() mailer.Attachment {
	return mailer.Attachment{
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Content:     f.Content,
	}
}

// LoadAll opens refs concurrently and returns the files in ref order.
// The first error cancels the remaining loads. ErrTooLarge is returned when
// the files together exceed MaxTotalSize.
func LoadAll(ctx context.Context, src Source, refs ...string) ([]*File, error) {
	files := make([]*File, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		g.Go(func() error {
			f, err := src.Open(ctx, ref)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int64
	for _, f := range files {
		total += int64(len(f.Content))
	}
	if total > MaxTotalSize {
		return nil, fmt.Errorf("%w: %d bytes in total", ErrTooLarge, total)
	}
	return files, nil
}

// readLimited reads r fully, failing with ErrTooLarge past maxSize bytes.
func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if int64(len(data)) > maxSize {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return data, nil
}
