// Package graph exposes the data model as a GraphQL schema: queries and
// mutations mirroring the REST verbs plus relationship resolvers, each a
// single parent-scoped fetch.
package graph

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"cashcompass/dtos"
	"cashcompass/pkg/passwd"
	"cashcompass/store"
)

type builder struct {
	st     *store.Store
	hasher passwd.Hasher

	userType         *graphql.Object
	categoryType     *graphql.Object
	incomeSourceType *graphql.Object
	allocationType   *graphql.Object
	expenseType      *graphql.Object
}

func NewSchema(st *store.Store, hasher passwd.Hasher) (graphql.Schema, error) {
	b := &builder{st: st, hasher: hasher}
	b.baseTypes()
	b.relationships()
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.query(),
		Mutation: b.mutation(),
	})
}

// Argument coercion helpers. graphql-go hands Int args over as int and
// Decimal scalar args as decimal.Decimal.

func idArg(p graphql.ResolveParams, name string) (uint, error) {
	v, ok := p.Args[name].(int)
	if !ok || v <= 0 {
		return 0, fmt.Errorf("validation: %s must be a positive id", name)
	}
	return uint(v), nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func optStringArg(p graphql.ResolveParams, name string) *string {
	if s, ok := p.Args[name].(string); ok {
		return &s
	}
	return nil
}

func decimalArg(p graphql.ResolveParams, name string) decimal.Decimal {
	if d, ok := p.Args[name].(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}

func timeArg(p graphql.ResolveParams, name string) (time.Time, error) {
	s, ok := p.Args[name].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("validation: %s is required", name)
	}
	t, err := dtos.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("validation: %v", err)
	}
	return t, nil
}
