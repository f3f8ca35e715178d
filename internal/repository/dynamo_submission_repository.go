package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pathsdata/contact-backend/internal/config"
	"github.com/pathsdata/contact-backend/internal/model"
)

// DynamoAPI is the subset of the DynamoDB client used by the repository.
// Defined here so tests can substitute a fake.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoSubmissionRepository stores submissions in a DynamoDB table keyed
// by contact_id.
type DynamoSubmissionRepository struct {
	client DynamoAPI
	table  string
}

// NewDynamoClient builds a DynamoDB client from the default AWS credential
// chain. AWSEndpoint and static credentials, when set, point the client at
// a local stack instead.
func NewDynamoClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})
	return client, nil
}

// NewDynamoSubmissionRepository creates a repository writing to the given
// table through the given client.
func NewDynamoSubmissionRepository(client DynamoAPI, table string) *DynamoSubmissionRepository {
	return &DynamoSubmissionRepository{client: client, table: table}
}

// Ensure DynamoSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*DynamoSubmissionRepository)(nil)

// Save marshals the submission via its dynamodbav tags and puts it into the
// table. Each submission carries a fresh UUID, so concurrent writes never
// collide on the key.
func (r *DynamoSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	item, err := attributevalue.MarshalMap(sub)
	if err != nil {
		return fmt.Errorf("marshaling submission %s: %w", sub.ID, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting submission %s: %w", sub.ID, err)
	}
	return nil
}

// List scans the table and orders the page in memory, newest first. A scan
// returns items in no particular order, so pagination here is best-effort;
// acceptable for a low-volume admin listing.
func (r *DynamoSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning submissions: %w", err)
	}

	var subs []*model.Submission
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subs); err != nil {
		return nil, fmt.Errorf("unmarshaling submissions: %w", err)
	}

	// CreatedAt uses a sortable fixed layout, so a string compare orders
	// records chronologically.
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt > subs[j].CreatedAt
	})

	if opts.Offset >= len(subs) {
		return nil, nil
	}
	subs = subs[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(subs) {
		subs = subs[:opts.Limit]
	}
	return subs, nil
}
