package output

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/utemplates/internal/errors"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestSaveToFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(dir, "a", "b", "index.html")
		if err := SaveToFile("<p>hi</p>", path); err != nil {
			t.Fatal(err)
		}
		if got := readFile(t, path); got != "<p>hi</p>" {
			t.Errorf("content = %q", got)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0600 != 0600 {
			t.Errorf("mode = %v", info.Mode())
		}
	})

	t.Run("overwrites", func(t *testing.T) {
		path := filepath.Join(dir, "page.html")
		if err := SaveToFile("<p>first, and longer</p>", path); err != nil {
			t.Fatal(err)
		}
		if err := SaveToFile("<p>2</p>", path); err != nil {
			t.Fatal(err)
		}
		if got := readFile(t, path); got != "<p>2</p>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		blocker := filepath.Join(dir, "file")
		if err := os.WriteFile(blocker, nil, 0644); err != nil {
			t.Fatal(err)
		}
		err := SaveToFile("x", filepath.Join(blocker, "child.html"))
		if !stderrors.Is(err, errors.ErrIO) {
			t.Fatalf("expected io error, got %v", err)
		}
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Code != "E400" {
			t.Errorf("error = %v", err)
		}
	})
}

func TestDirSink(t *testing.T) {
	root := t.TempDir()
	var sink Sink = Dir{Root: root}
	if err := sink.Write(context.Background(), "blog/post.html", "<h1>Post</h1>"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, filepath.Join(root, "blog", "post.html")); got != "<h1>Post</h1>" {
		t.Errorf("content = %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Write(ctx, "x.html", ""); !stderrors.Is(err, errors.ErrIO) {
		t.Errorf("cancelled write: %v", err)
	}
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, params)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestS3SinkWrite(t *testing.T) {
	client := &fakeS3{}
	sink := NewS3Sink(client, "site", "pages/").WithCacheControl("max-age=60")
	sink.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	if err := sink.Write(context.Background(), "/index.html", "<p>x</p>"); err != nil {
		t.Fatal(err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("PutObject calls = %d", len(client.inputs))
	}

	in := client.inputs[0]
	checks := []struct {
		name string
		got  string
		want string
	}{
		{"bucket", aws.ToString(in.Bucket), "site"},
		{"key", aws.ToString(in.Key), "pages/index.html"},
		{"content type", aws.ToString(in.ContentType), ContentTypeHTML},
		{"cache control", aws.ToString(in.CacheControl), "max-age=60"},
		{"rendered-at", in.Metadata["rendered-at"], "2024-01-02T03:04:05Z"},
		{"body", client.bodies[0], "<p>x</p>"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if aws.ToInt64(in.ContentLength) != 8 {
		t.Errorf("ContentLength = %d", aws.ToInt64(in.ContentLength))
	}
}

func TestS3SinkError(t *testing.T) {
	cause := stderrors.New("access denied")
	sink := NewS3Sink(&fakeS3{err: cause}, "site", "")

	err := sink.Write(context.Background(), "a.html", "")
	if !stderrors.Is(err, errors.ErrIO) || !stderrors.Is(err, cause) {
		t.Fatalf("error = %v", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Code != "E401" || e.Path != "s3://site/a.html" {
		t.Errorf("Code = %q, Path = %q", e.Code, e.Path)
	}
}
