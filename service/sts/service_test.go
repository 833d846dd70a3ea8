package awssts

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockIdentityClient struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (m *mockIdentityClient) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return m.out, m.err
}

func TestGetCallerAccountID(t *testing.T) {
	svc := NewServiceWithClient(&mockIdentityClient{out: &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}})

	account, err := svc.GetCallerAccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456789012", account)
}

func TestGetCallerAccountIDErrors(t *testing.T) {
	denied := errors.New("access denied")

	_, err := NewServiceWithClient(&mockIdentityClient{err: denied}).GetCallerAccountID(context.Background())
	assert.ErrorIs(t, err, denied)

	_, err = NewServiceWithClient(&mockIdentityClient{out: &sts.GetCallerIdentityOutput{}}).GetCallerAccountID(context.Background())
	assert.ErrorIs(t, err, errNoAccount)
}
