package bedrock

import (
	"errors"
	"fmt"
	"testing"

	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"

	"skiracer-backend/internal/analyzer"
)

func TestMediaBlockRoutesImagesAndVideos(t *testing.T) {
	c := &Client{imageModelID: "image-model", videoModelID: "video-model"}
	data := []byte{0xff, 0xd8}

	block, modelID, err := c.mediaBlock(data, "image/jpeg")
	if err != nil {
		t.Fatalf("mediaBlock image: %v", err)
	}
	if modelID != "image-model" {
		t.Fatalf("expected image model, got %s", modelID)
	}
	if _, ok := block.(*brtypes.ContentBlockMemberImage); !ok {
		t.Fatalf("expected image block, got %T", block)
	}

	block, modelID, err = c.mediaBlock(data, "video/mp4")
	if err != nil {
		t.Fatalf("mediaBlock video: %v", err)
	}
	if modelID != "video-model" {
		t.Fatalf("expected video model, got %s", modelID)
	}
	if _, ok := block.(*brtypes.ContentBlockMemberVideo); !ok {
		t.Fatalf("expected video block, got %T", block)
	}
}

func TestMediaBlockRejectsUnknownType(t *testing.T) {
	c := &Client{imageModelID: "i", videoModelID: "v"}

	_, _, err := c.mediaBlock(nil, "application/pdf")
	var analysisErr *analyzer.AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("expected AnalysisError, got %v", err)
	}
	if analysisErr.Cause != analyzer.CauseUnsupported {
		t.Fatalf("expected unsupported cause, got %s", analysisErr.Cause)
	}
}

func TestImageAndVideoFormatMapping(t *testing.T) {
	if got := imageFormat("image/png"); got != brtypes.ImageFormatPng {
		t.Fatalf("png: got %s", got)
	}
	if got := imageFormat("image/jpeg"); got != brtypes.ImageFormatJpeg {
		t.Fatalf("jpeg: got %s", got)
	}
	if got := videoFormat("video/quicktime"); got != brtypes.VideoFormatMov {
		t.Fatalf("mov: got %s", got)
	}
	if got := videoFormat("video/mp4"); got != brtypes.VideoFormatMp4 {
		t.Fatalf("mp4: got %s", got)
	}
}

type fakeAPIError struct {
	code string
	msg  string
}

func (e *fakeAPIError) Error() string                 { return fmt.Sprintf("%s: %s", e.code, e.msg) }
func (e *fakeAPIError) ErrorCode() string             { return e.code }
func (e *fakeAPIError) ErrorMessage() string          { return e.msg }
func (e *fakeAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func TestClassify(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"AccessDeniedException", analyzer.CauseAuth},
		{"UnrecognizedClientException", analyzer.CauseAuth},
		{"ThrottlingException", analyzer.CauseThrottled},
		{"ServiceQuotaExceededException", analyzer.CauseQuota},
		{"ValidationException", analyzer.CauseUnsupported},
		{"ResourceNotFoundException", analyzer.CauseUnsupported},
		{"SomethingElse", analyzer.CauseUnknown},
	}
	for _, tc := range cases {
		got := classify(&fakeAPIError{code: tc.code, msg: "detail"})
		if got.Cause != tc.want {
			t.Errorf("classify(%s) cause = %s, want %s", tc.code, got.Cause, tc.want)
		}
	}

	got := classify(errors.New("dial tcp: connection refused"))
	if got.Cause != analyzer.CauseUnknown {
		t.Errorf("non-api error should classify as unknown, got %s", got.Cause)
	}
}
