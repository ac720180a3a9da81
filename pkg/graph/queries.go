package graph

import "github.com/graphql-go/graphql"

var listArgs = graphql.FieldConfigArgument{
	"limit":  &graphql.ArgumentConfig{Type: graphql.Int},
	"offset": &graphql.ArgumentConfig{Type: graphql.Int},
}

func pageArgs(p graphql.ResolveParams) (limit, offset int) {
	limit, _ = p.Args["limit"].(int)
	offset, _ = p.Args["offset"].(int)
	return limit, offset
}

func (b *builder) query() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(b.userType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, offset := pageArgs(p)
					return b.st.ListUsers(p.Context, limit, offset)
				},
			},
			"user": &graphql.Field{
				Type: b.userType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "userId")
					if err != nil {
						return nil, err
					}
					return b.st.GetUser(p.Context, id)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(b.categoryType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, offset := pageArgs(p)
					return b.st.ListCategories(p.Context, limit, offset)
				},
			},
			"category": &graphql.Field{
				Type: b.categoryType,
				Args: graphql.FieldConfigArgument{
					"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "categoryId")
					if err != nil {
						return nil, err
					}
					return b.st.GetCategory(p.Context, id)
				},
			},
			"incomeSources": &graphql.Field{
				Type: graphql.NewList(b.incomeSourceType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, offset := pageArgs(p)
					return b.st.ListIncomeSources(p.Context, limit, offset)
				},
			},
			"incomeSource": &graphql.Field{
				Type: b.incomeSourceType,
				Args: graphql.FieldConfigArgument{
					"incomeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "incomeId")
					if err != nil {
						return nil, err
					}
					return b.st.GetIncomeSource(p.Context, id)
				},
			},
			"allocations": &graphql.Field{
				Type: graphql.NewList(b.allocationType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, offset := pageArgs(p)
					return b.st.ListAllocations(p.Context, limit, offset)
				},
			},
			"allocation": &graphql.Field{
				Type: b.allocationType,
				Args: graphql.FieldConfigArgument{
					"allocationId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "allocationId")
					if err != nil {
						return nil, err
					}
					return b.st.GetAllocation(p.Context, id)
				},
			},
			"expenses": &graphql.Field{
				Type: graphql.NewList(b.expenseType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, offset := pageArgs(p)
					return b.st.ListExpenses(p.Context, limit, offset)
				},
			},
			"expense": &graphql.Field{
				Type: b.expenseType,
				Args: graphql.FieldConfigArgument{
					"expenseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "expenseId")
					if err != nil {
						return nil, err
					}
					return b.st.GetExpense(p.Context, id)
				},
			},
		},
	})
}
