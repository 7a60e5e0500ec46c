package main

import (
	"context"
	"log"

	"appsync-books/handlers/delete-book/internal/handler"
	"appsync-books/internal/bootstrap"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	env, err := bootstrap.Load(context.TODO())
	if err != nil {
		log.Fatalln("configuration error: " + err.Error())
	}

	h := handler.New(handler.Config{
		Store:     env.Store,
		TableName: env.Config.BooksTable,
		Logger:    env.Logger,
	})

	lambda.Start(h.DeleteBook)
}
