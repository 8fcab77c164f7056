package utils

import (
	"context"
	"encoding/json"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// DBSecret mirrors the JSON layout of an RDS credential secret.
type DBSecret struct {
	Host     string `json:"host"`
	Username string `json:"username"`
	Password string `json:"password"`
	Port     int    `json:"port"`
}

// Cached for the process lifetime; rotation means a restart.
var secretCache *DBSecret

// GetDBSecret fetches and caches the database credential secret from AWS
// Secrets Manager.
func GetDBSecret(ctx context.Context, secretARN string) (*DBSecret, error) {
	if secretCache != nil {
		return secretCache, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := secretsmanager.NewFromConfig(cfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretARN,
	})
	if err != nil {
		return nil, fmt.Errorf("get secret value: %w", err)
	}

	var secret DBSecret
	if err := json.Unmarshal([]byte(*out.SecretString), &secret); err != nil {
		return nil, fmt.Errorf("decode secret: %w", err)
	}
	if secret.Port == 0 {
		secret.Port = 5432
	}

	secretCache = &secret
	return secretCache, nil
}
