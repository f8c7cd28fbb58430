package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"

	"skiracer-backend/internal/analyzer"
)

// Client implements analyzer.Analyzer using the Bedrock Converse API.
// Images go to a Claude model, videos to Nova Pro.
type Client struct {
	client       *bedrockruntime.Client
	imageModelID string
	videoModelID string
}

// New constructs a Bedrock-backed analyzer. A failure here means the
// capability is unconfigured; callers should fall back to an unavailable
// analyzer rather than failing per-call.
func New(ctx context.Context, region, imageModelID, videoModelID string) (*Client, error) {
	if strings.TrimSpace(imageModelID) == "" || strings.TrimSpace(videoModelID) == "" {
		return nil, fmt.Errorf("bedrock model ids are required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return nil, fmt.Errorf("aws credentials: %w", err)
	}

	return &Client{
		client:       bedrockruntime.NewFromConfig(cfg),
		imageModelID: imageModelID,
		videoModelID: videoModelID,
	}, nil
}

// Available reports true; an unconfigured client is never constructed.
func (c *Client) Available() bool { return c != nil && c.client != nil }

// Analyze sends the media to the appropriate model and returns the feedback text.
func (c *Client) Analyze(ctx context.Context, data []byte, mediaType, filename string) (string, error) {
	block, modelID, err := c.mediaBlock(data, mediaType)
	if err != nil {
		return "", err
	}

	out, err := c.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(modelID),
		Messages: []brtypes.Message{{
			Role:    brtypes.ConversationRoleUser,
			Content: []brtypes.ContentBlock{&brtypes.ContentBlockMemberText{Value: skiFormPrompt}, block},
		}},
		InferenceConfig: &brtypes.InferenceConfiguration{
			Temperature: aws.Float32(0.5),
			MaxTokens:   aws.Int32(2048),
		},
	})
	if err != nil {
		return "", classify(err)
	}

	msg, ok := out.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", analyzer.NewError(analyzer.CauseEmpty, "model returned no message output")
	}

	var sb strings.Builder
	for _, content := range msg.Value.Content {
		if text, ok := content.(*brtypes.ContentBlockMemberText); ok {
			sb.WriteString(text.Value)
		}
	}
	if sb.Len() == 0 {
		return "", analyzer.NewError(analyzer.CauseEmpty, "model returned an empty response")
	}
	return sb.String(), nil
}

// mediaBlock builds the image or video content block and picks the model.
func (c *Client) mediaBlock(data []byte, mediaType string) (brtypes.ContentBlock, string, error) {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	switch {
	case strings.HasPrefix(mt, "image/"):
		return &brtypes.ContentBlockMemberImage{Value: brtypes.ImageBlock{
			Format: imageFormat(mt),
			Source: &brtypes.ImageSourceMemberBytes{Value: data},
		}}, c.imageModelID, nil
	case strings.HasPrefix(mt, "video/"):
		return &brtypes.ContentBlockMemberVideo{Value: brtypes.VideoBlock{
			Format: videoFormat(mt),
			Source: &brtypes.VideoSourceMemberBytes{Value: data},
		}}, c.videoModelID, nil
	default:
		return nil, "", analyzer.NewError(analyzer.CauseUnsupported, "unsupported media type: %s", mediaType)
	}
}

// classify maps Bedrock API failures onto analysis error causes.
func classify(err error) *analyzer.AnalysisError {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return analyzer.NewError(analyzer.CauseUnknown, "analysis request failed: %v", err)
	}

	code := apiErr.ErrorCode()
	switch code {
	case "AccessDeniedException", "UnrecognizedClientException":
		return analyzer.NewError(analyzer.CauseAuth,
			"access denied to the analysis model; check bedrock:InvokeModel permissions and model access")
	case "ThrottlingException":
		return analyzer.NewError(analyzer.CauseThrottled,
			"too many analysis requests; wait a moment and try again")
	case "ServiceQuotaExceededException":
		return analyzer.NewError(analyzer.CauseQuota,
			"analysis service quota exceeded for this account")
	case "ValidationException", "ResourceNotFoundException":
		return analyzer.NewError(analyzer.CauseUnsupported,
			"the analysis model rejected this media or is unavailable in this region: %s", apiErr.ErrorMessage())
	default:
		return analyzer.NewError(analyzer.CauseUnknown, "analysis api error (%s): %s", code, apiErr.ErrorMessage())
	}
}

func imageFormat(mediaType string) brtypes.ImageFormat {
	switch mediaType {
	case "image/png":
		return brtypes.ImageFormatPng
	case "image/gif":
		return brtypes.ImageFormatGif
	case "image/webp":
		return brtypes.ImageFormatWebp
	default:
		return brtypes.ImageFormatJpeg
	}
}

func videoFormat(mediaType string) brtypes.VideoFormat {
	switch mediaType {
	case "video/quicktime":
		return brtypes.VideoFormatMov
	case "video/mpeg":
		return brtypes.VideoFormatMpeg
	case "video/webm":
		return brtypes.VideoFormatWebm
	case "video/x-matroska":
		return brtypes.VideoFormatMkv
	default:
		return brtypes.VideoFormatMp4
	}
}

var _ analyzer.Analyzer = (*Client)(nil)
