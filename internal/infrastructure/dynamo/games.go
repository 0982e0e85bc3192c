package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/promo-api-nosql/internal/domain"
)

// GameRepo provides typed DynamoDB operations for the games table.
// PK: user_id, SK: game_id — the owner is part of the primary key, so
// every lookup is owner-scoped by construction.
type GameRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewGameRepo(client *dynamodb.Client, tableName string) *GameRepo {
	return &GameRepo{client: client, tableName: tableName}
}

// List returns every game in userID's partition. Item order is whatever
// DynamoDB returns (sort-key order) and is not guaranteed stable.
func (r *GameRepo) List(ctx context.Context, userID string) ([]domain.Game, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	var games []domain.Game
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GameRepo) Get(ctx context.Context, userID, gameID string) (*domain.Game, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("user_id", userID, "game_id", gameID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("game not found: %w", domain.ErrNotFound)
	}
	var g domain.Game
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepo) Put(ctx context.Context, g *domain.Game) error {
	item, err := attributevalue.MarshalMap(g)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Delete removes the game item. DeleteItem on an absent key succeeds,
// which gives the silent no-op the callers rely on.
func (r *GameRepo) Delete(ctx context.Context, userID, gameID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("user_id", userID, "game_id", gameID),
	})
	return err
}
