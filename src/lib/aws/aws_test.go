package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	inputs []*s3.DeleteObjectInput
	err    error
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	return &s3.DeleteObjectOutput{}, f.err
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestObjectKeyFromURL(t *testing.T) {
	cases := map[string]string{
		"https://studio-assets.s3.amazonaws.com/packages/portrait.jpg":                "packages/portrait.jpg",
		"https://studio-assets.s3.ap-southeast-1.amazonaws.com/packages/portrait.jpg": "packages/portrait.jpg",
		"https://s3.amazonaws.com/studio-assets/packages/portrait.jpg":                "packages/portrait.jpg",
		"https://utfs.io/f/abc123.png":                                                "abc123.png",
	}
	for in, want := range cases {
		got, err := ObjectKeyFromURL("studio-assets", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ObjectKeyFromURL("studio-assets", "https://studio-assets.s3.amazonaws.com/")
	assert.Error(t, err)
}

func TestS3ImageStoreDelete(t *testing.T) {
	client := &fakeS3{}
	store := NewS3ImageStore(client, "studio-assets")

	err := store.Delete(context.Background(), "https://studio-assets.s3.amazonaws.com/packages/portrait.jpg")
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)
	assert.Equal(t, "studio-assets", aws.ToString(client.inputs[0].Bucket))
	assert.Equal(t, "packages/portrait.jpg", aws.ToString(client.inputs[0].Key))

	client.err = errors.New("access denied")
	assert.Error(t, store.Delete(context.Background(), "https://studio-assets.s3.amazonaws.com/a.jpg"))
}

func TestSESSendMessage(t *testing.T) {
	client := &fakeSES{}
	id, err := SESSendMessage(context.Background(), client, aws.String("from@studio.test"),
		&types.Destination{ToAddresses: []string{"to@studio.test"}},
		&types.Message{Subject: &types.Content{Data: aws.String("hi")}})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", aws.ToString(id))
	assert.Equal(t, []string{"to@studio.test"}, client.input.Destination.ToAddresses)

	client.err = errors.New("throttled")
	_, err = SESSendMessage(context.Background(), client, aws.String("from@studio.test"), &types.Destination{}, &types.Message{})
	assert.Error(t, err)
}
