package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/crud-clients/models"
)

var clientsTable = models.Client{}.TableName()

var clientColumns = []string{"id", "name", "cpf", "income", "children", "birth_date"}

// sortableClientColumns maps the public property names accepted in a page
// request to the columns they order by.
var sortableClientColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"cpf":       "cpf",
	"income":    "income",
	"children":  "children",
	"birthDate": "birth_date",
}

func returningClientColumns() string {
	return "RETURNING " + strings.Join(clientColumns, ", ")
}

func buildSelectClientByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(clientColumns...).
		From(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountClientsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(clientsTable).
		ToSql()
}

func buildExistsClientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectClientsPageQuery(b sq.StatementBuilderType, request models.PageRequest) (string, []any, error) {
	orderBy, err := clientOrderBy(request.Sort)
	if err != nil {
		return "", nil, err
	}

	return b.Select(clientColumns...).
		From(clientsTable).
		OrderBy(orderBy...).
		Limit(uint64(request.Size)).
		Offset(uint64(request.Offset())).
		ToSql()
}

func buildInsertClientQuery(b sq.StatementBuilderType, client models.Client) (string, []any, error) {
	return b.Insert(clientsTable).
		Columns("name", "cpf", "income", "children", "birth_date").
		Values(client.Name, client.CPF, client.Income, client.Children, client.BirthDate).
		Suffix(returningClientColumns()).
		ToSql()
}

func buildUpdateClientQuery(b sq.StatementBuilderType, client models.Client) (string, []any, error) {
	return b.Update(clientsTable).
		Set("name", client.Name).
		Set("cpf", client.CPF).
		Set("income", client.Income).
		Set("children", client.Children).
		Set("birth_date", client.BirthDate).
		Where(sq.Eq{"id": client.ID}).
		Suffix(returningClientColumns()).
		ToSql()
}

func buildDeleteClientQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(clientsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// clientOrderBy turns sort orders into ORDER BY terms. Only whitelisted
// properties are accepted. id is appended as a tiebreaker so that paging over
// equal keys is stable; an empty sort orders by id alone.
func clientOrderBy(sort []models.SortOrder) ([]string, error) {
	orderBy := make([]string, 0, len(sort)+1)
	hasID := false

	for _, order := range sort {
		column, ok := sortableClientColumns[order.Property]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSortProperty, order.Property)
		}

		direction := models.Direction(strings.ToUpper(string(order.Direction)))
		switch direction {
		case "":
			direction = models.Asc
		case models.Asc, models.Desc:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidSortDirection, order.Direction)
		}

		if column == "id" {
			hasID = true
		}
		orderBy = append(orderBy, column+" "+string(direction))
	}

	if !hasID {
		orderBy = append(orderBy, "id "+string(models.Asc))
	}

	return orderBy, nil
}
