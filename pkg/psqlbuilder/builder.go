// Package psqlbuilder обёртка над squirrel с плейсхолдерами Postgres ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с плейсхолдерами Postgres
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder с плейсхолдерами Postgres
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE builder с плейсхолдерами Postgres
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder с плейсхолдерами Postgres
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
