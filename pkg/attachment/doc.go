// Package attachment loads email attachments from object storage and URLs.
//
// Sources return raw bytes; encoding for the wire is left to the provider
// (the sendgrid builder base64-encodes on AddAttachment).
//
// # Sources
//
//   - S3Source: S3-compatible storage (AWS, MinIO); refs are keys in the
//     configured bucket or s3://bucket/key URIs
//   - HTTPSource: http(s) URLs with a download size limit
//
// # Usage
//
//	src, err := attachment.NewS3Source(attachment.S3Config{
//		Bucket:    "invoices",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	files, err := attachment.LoadAll(ctx, src, "2024/inv-001.pdf", "s3://shared/terms.pdf")
//	if err != nil {
//		return err
//	}
//
//	msg := client.NewMessage().AddTo("alice@example.com", "Alice")
//	for _, f := range files {
//		msg.AddAttachment(f.Filename, f.ContentType, sendgrid.DispositionAttachment, f.Content)
//	}
//
// # Content Types
//
// The content type reported by the source is used when meaningful. Otherwise
// DetectMIME checks the file extension, then sniffs the first 512 bytes.
//
// # Errors
//
// All errors match one of the package sentinels with errors.Is:
// ErrInvalidConfig, ErrInvalidRef, ErrNotFound, ErrAccessDenied,
// ErrDownloadFailed, ErrTooLarge, ErrEmpty.
package attachment
