package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/hendrawan/sitevault/internal/domain"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) Infof(template string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(template, args...))
}

func (l *fakeLogger) Warnf(template string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(template, args...))
}

func (l *fakeLogger) Errorf(template string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(template, args...))
}

type fakeDumper struct {
	content string
	err     error
	calls   int
}

func (d *fakeDumper) Dump(ctx context.Context, outputPath string) error {
	d.calls++
	if d.err != nil {
		return d.err
	}
	return os.WriteFile(outputPath, []byte(d.content), 0644)
}

type fakeRemote struct {
	files []domain.RemoteFile

	uploads   []string
	deleted   []string
	listCalls int
	closed    bool

	uploadErr error
	listErr   error
	deleteErr map[string]error
}

func (r *fakeRemote) Upload(ctx context.Context, localPath string, remoteName string) error {
	if r.uploadErr != nil {
		return r.uploadErr
	}
	r.uploads = append(r.uploads, remoteName)
	return nil
}

func (r *fakeRemote) List(ctx context.Context) ([]domain.RemoteFile, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	files := make([]domain.RemoteFile, len(r.files))
	copy(files, r.files)
	return files, nil
}

func (r *fakeRemote) Delete(ctx context.Context, remoteName string) error {
	if err := r.deleteErr[remoteName]; err != nil {
		return err
	}
	r.deleted = append(r.deleted, remoteName)
	remaining := r.files[:0]
	for _, file := range r.files {
		if file.Name != remoteName {
			remaining = append(remaining, file)
		}
	}
	r.files = remaining
	return nil
}

func (r *fakeRemote) Close() error {
	r.closed = true
	return nil
}

func (r *fakeRemote) names() []string {
	var names []string
	for _, file := range r.files {
		names = append(names, file.Name)
	}
	return names
}
