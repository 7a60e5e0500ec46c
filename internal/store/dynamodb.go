package store

import (
	"context"
	"errors"
	"fmt"

	"appsync-books/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoDB and is unit-testable.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	dynamodb.ScanAPIClient
}

// DynamoDBScanPaginatorAPI is a convenience wrapper over DynamoDB scan operations and is unit-testable.
type DynamoDBScanPaginatorAPI interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDBNewScanPaginatorAPI is a type that allows creating instances of DynamoDBScanPaginatorAPI.
type DynamoDBNewScanPaginatorAPI func(
	client dynamodb.ScanAPIClient, params *dynamodb.ScanInput, optFns ...func(*dynamodb.ScanPaginatorOptions),
) DynamoDBScanPaginatorAPI

// NewScanPaginator wraps dynamodb.NewScanPaginator to satisfy DynamoDBNewScanPaginatorAPI.
func NewScanPaginator(
	client dynamodb.ScanAPIClient, params *dynamodb.ScanInput, optFns ...func(*dynamodb.ScanPaginatorOptions),
) DynamoDBScanPaginatorAPI {
	return dynamodb.NewScanPaginator(client, params, optFns...)
}

// DynamoDB implements Store on top of a DynamoDB table keyed by "id".
type DynamoDB struct {
	api              DynamoDBAPI
	newScanPaginator DynamoDBNewScanPaginatorAPI
}

var _ Store = (*DynamoDB)(nil)

// NewDynamoDB creates a new DynamoDB store.
func NewDynamoDB(api DynamoDBAPI, nsp DynamoDBNewScanPaginatorAPI) *DynamoDB {
	return &DynamoDB{
		api,
		nsp,
	}
}

func itemKey(id string) (map[string]ddbtypes.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(types.BookItemKey{ID: id})
	if err != nil {
		return nil, fmt.Errorf("could not marshal key: %w", err)
	}
	return key, nil
}

// Put writes book, replacing any item with the same id.
func (d *DynamoDB) Put(ctx context.Context, table string, book types.Book) error {
	item, err := attributevalue.MarshalMap(book)
	if err != nil {
		return fmt.Errorf("could not marshal book value: %w", err)
	}

	_, err = d.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("could not put book: %w", err)
	}
	return nil
}

// Get reads the book with the given id. It returns ErrNotFound if there is none.
func (d *DynamoDB) Get(ctx context.Context, table, id string) (types.Book, error) {
	key, err := itemKey(id)
	if err != nil {
		return types.Book{}, err
	}

	out, err := d.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return types.Book{}, fmt.Errorf("could not get book: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return types.Book{}, ErrNotFound
	}

	var book types.Book
	if err := attributevalue.UnmarshalMap(out.Item, &book); err != nil {
		return types.Book{}, fmt.Errorf("could not unmarshal book: %w", err)
	}
	return book, nil
}

// Delete removes the book with the given id. Deleting a missing id is not an error.
func (d *DynamoDB) Delete(ctx context.Context, table, id string) error {
	key, err := itemKey(id)
	if err != nil {
		return err
	}

	_, err = d.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("could not delete book: %w", err)
	}
	return nil
}

// Scan returns every book in the table, following all result pages.
func (d *DynamoDB) Scan(ctx context.Context, table string) ([]types.Book, error) {
	// A Paginator has to be made per-ScanInput so it's not a reusable resource.
	p := d.newScanPaginator(d.api, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})

	books := []types.Book{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not scan books: %w", err)
		}

		if out.Count != 0 {
			var data []types.Book
			err := attributevalue.UnmarshalListOfMaps(out.Items, &data)
			if err != nil {
				return nil, fmt.Errorf("could not unmarshal books: %w", err)
			}
			books = append(books, data...)
		}
	}

	return books, nil
}

// Update sets each of fields on the item with the given id.
func (d *DynamoDB) Update(ctx context.Context, table, id string, fields []Field) error {
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	key, err := itemKey(id)
	if err != nil {
		return err
	}

	update := expression.Set(expression.Name(fields[0].Name), expression.Value(fields[0].Value))
	for _, f := range fields[1:] {
		update = update.Set(expression.Name(f.Name), expression.Value(f.Value))
	}

	e, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("error building update expression: %w", err)
	}

	_, err = d.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          e.Update(),
		ExpressionAttributeNames:  e.Names(),
		ExpressionAttributeValues: e.Values(),
		ReturnValues:              ddbtypes.ReturnValueUpdatedNew,
	})
	if err != nil {
		return fmt.Errorf("could not update book: %w", err)
	}
	return nil
}
