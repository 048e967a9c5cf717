package secrets

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// Manager reads secrets from AWS Secrets Manager.
type Manager struct {
	SVC secretsmanageriface.SecretsManagerAPI
}

func NewManager(region string) (*Manager, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Manager{SVC: secretsmanager.New(sess)}, nil
}

// Fetch returns the raw secret payload. String secrets come back as-is;
// binary secrets are already base64-decoded by the SDK. Fetch errors
// propagate unchanged, no retry.
func (m *Manager) Fetch(ctx context.Context, name string) ([]byte, error) {
	out, err := m.SVC.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	if out.SecretString != nil {
		return []byte(*out.SecretString), nil
	}
	return out.SecretBinary, nil
}
