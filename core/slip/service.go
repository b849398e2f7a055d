package slip

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
)

var (
	NowFunc = time.Now // mockable

	// newSuffix keeps two slips generated within the same second apart
	newSuffix = func() string { return uuid.New().String()[:8] }
)

type Service struct {
	students  student.Service
	results   result.Service
	renderer  *Renderer
	title     string
	outputDir string
}

func NewService(conf core.SlipConfig, students student.Service, results result.Service) *Service {
	return &Service{
		students:  students,
		results:   results,
		renderer:  NewRenderer(conf.LogoPath),
		title:     conf.Title,
		outputDir: conf.OutputDir,
	}
}

// Build returns the Slip of the Student with the given admission number.
func (svc *Service) Build(ctx context.Context, admissionNumber string) (Slip, error) {
	st, err := svc.students.Get(ctx, admissionNumber)
	if err != nil {
		return Slip{}, err
	}
	results, err := svc.results.ForStudent(ctx, st.AdmissionNumber, Rows)
	if err != nil {
		return Slip{}, err
	}
	return New(svc.title, st, results, NowFunc()), nil
}

// Generate renders the Student's slip and writes it atomically under the output directory.
// It returns the path of the written file.
func (svc *Service) Generate(ctx context.Context, admissionNumber string) (string, error) {
	s, err := svc.Build(ctx, admissionNumber)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err = svc.renderer.Render(&buf, s); err != nil {
		return "", core.WrapKind(err, core.KindFileSystem, "rendering result slip")
	}

	if err = os.MkdirAll(svc.outputDir, 0o755); err != nil {
		return "", core.WrapKind(errors.WithStack(err), core.KindFileSystem, "creating output directory")
	}
	path := filepath.Join(svc.outputDir, FileName(s.Student.AdmissionNumber, s.GeneratedAt, newSuffix()))
	if err = atomic.WriteFile(path, &buf); err != nil {
		return "", core.WrapKind(errors.WithStack(err), core.KindFileSystem, "writing result slip")
	}
	return path, nil
}
