package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"

	"cashcompass/models"
)

// decimalType keeps monetary values fixed-point across the wire: numeric
// input is coerced to decimal.Decimal, output is serialized as a number.
var decimalType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Fixed-point decimal value with 2 fractional digits.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			f, _ := v.Float64()
			return f
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			f, _ := v.Float64()
			return f
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil
			}
			return d
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.FloatValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		case *ast.IntValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		case *ast.StringValue:
			d, err := decimal.NewFromString(v.Value)
			if err != nil {
				return nil
			}
			return d
		}
		return nil
	},
})

// Source accessors tolerate both value and pointer sources; list fields
// yield values, single-object resolvers yield pointers.

func userSource(p graphql.ResolveParams) (*models.User, error) {
	switch u := p.Source.(type) {
	case *models.User:
		return u, nil
	case models.User:
		return &u, nil
	}
	return nil, fmt.Errorf("unexpected user source %T", p.Source)
}

func categorySource(p graphql.ResolveParams) (*models.Category, error) {
	switch c := p.Source.(type) {
	case *models.Category:
		return c, nil
	case models.Category:
		return &c, nil
	}
	return nil, fmt.Errorf("unexpected category source %T", p.Source)
}

func incomeSourceSource(p graphql.ResolveParams) (*models.IncomeSource, error) {
	switch s := p.Source.(type) {
	case *models.IncomeSource:
		return s, nil
	case models.IncomeSource:
		return &s, nil
	}
	return nil, fmt.Errorf("unexpected income source %T", p.Source)
}

func allocationSource(p graphql.ResolveParams) (*models.Allocation, error) {
	switch a := p.Source.(type) {
	case *models.Allocation:
		return a, nil
	case models.Allocation:
		return &a, nil
	}
	return nil, fmt.Errorf("unexpected allocation source %T", p.Source)
}

func expenseSource(p graphql.ResolveParams) (*models.Expense, error) {
	switch e := p.Source.(type) {
	case *models.Expense:
		return e, nil
	case models.Expense:
		return &e, nil
	}
	return nil, fmt.Errorf("unexpected expense source %T", p.Source)
}

// baseTypes defines the scalar fields of each object type. Raw FK ids are
// not exposed; clients navigate relationships through the resolver fields
// wired up in relationships(). The user type never exposes the password
// hash.
func (b *builder) baseTypes() {
	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A user of the bookkeeping system.",
		Fields: graphql.Fields{
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.ID, nil
				},
			},
			"fullName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.FullName, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.Email, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := userSource(p)
					if err != nil {
						return nil, err
					}
					return u.CreatedAt, nil
				},
			},
		},
	})

	b.categoryType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"categoryId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := categorySource(p)
					if err != nil {
						return nil, err
					}
					return c.ID, nil
				},
			},
			"categoryName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := categorySource(p)
					if err != nil {
						return nil, err
					}
					return c.Name, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := categorySource(p)
					if err != nil {
						return nil, err
					}
					return c.Description, nil
				},
			},
		},
	})

	b.incomeSourceType = graphql.NewObject(graphql.ObjectConfig{
		Name: "IncomeSource",
		Fields: graphql.Fields{
			"incomeId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.ID, nil
				},
			},
			"sourceName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.SourceName, nil
				},
			},
			"amount": &graphql.Field{
				Type: graphql.NewNonNull(decimalType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.Amount, nil
				},
			},
			"payFrequency": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.PayFrequency, nil
				},
			},
			"nextPayDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.NextPayDate, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					s, err := incomeSourceSource(p)
					if err != nil {
						return nil, err
					}
					return s.CreatedAt, nil
				},
			},
		},
	})

	b.allocationType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Allocation",
		Fields: graphql.Fields{
			"allocationId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, err := allocationSource(p)
					if err != nil {
						return nil, err
					}
					return a.ID, nil
				},
			},
			"allocationType": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, err := allocationSource(p)
					if err != nil {
						return nil, err
					}
					return a.AllocationType, nil
				},
			},
			"allocationValue": &graphql.Field{
				Type: graphql.NewNonNull(decimalType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, err := allocationSource(p)
					if err != nil {
						return nil, err
					}
					return a.AllocationValue, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, err := allocationSource(p)
					if err != nil {
						return nil, err
					}
					return a.CreatedAt, nil
				},
			},
		},
	})

	b.expenseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Expense",
		Fields: graphql.Fields{
			"expenseId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					return e.ID, nil
				},
			},
			"expenseName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					return e.ExpenseName, nil
				},
			},
			"amount": &graphql.Field{
				Type: graphql.NewNonNull(decimalType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					return e.Amount, nil
				},
			},
			"expenseDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					return e.ExpenseDate.UTC(), nil
				},
			},
			"notes": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					if e.Notes == nil {
						return nil, nil
					}
					return *e.Notes, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := expenseSource(p)
					if err != nil {
						return nil, err
					}
					return e.CreatedAt, nil
				},
			},
		},
	})
}

// relationships wires the navigation fields. Each resolver is exactly one
// single-parent-scoped store call; no implicit deep fetches.
func (b *builder) relationships() {
	b.userType.AddFieldConfig("categories", &graphql.Field{
		Type: graphql.NewList(b.categoryType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := userSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListCategoriesByUser(p.Context, u.ID)
		},
	})
	b.userType.AddFieldConfig("incomeSources", &graphql.Field{
		Type: graphql.NewList(b.incomeSourceType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := userSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListIncomeSourcesByUser(p.Context, u.ID)
		},
	})
	b.userType.AddFieldConfig("allocations", &graphql.Field{
		Type: graphql.NewList(b.allocationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := userSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListAllocationsByUser(p.Context, u.ID)
		},
	})
	b.userType.AddFieldConfig("expenses", &graphql.Field{
		Type: graphql.NewList(b.expenseType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, err := userSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListExpensesByUser(p.Context, u.ID)
		},
	})

	b.categoryType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, err := categorySource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetUser(p.Context, c.UserID)
		},
	})
	b.categoryType.AddFieldConfig("expenses", &graphql.Field{
		Type: graphql.NewList(b.expenseType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, err := categorySource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListExpensesByCategory(p.Context, c.ID)
		},
	})
	b.categoryType.AddFieldConfig("allocations", &graphql.Field{
		Type: graphql.NewList(b.allocationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			c, err := categorySource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListAllocationsByCategory(p.Context, c.ID)
		},
	})

	b.incomeSourceType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			s, err := incomeSourceSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetUser(p.Context, s.UserID)
		},
	})
	b.incomeSourceType.AddFieldConfig("allocations", &graphql.Field{
		Type: graphql.NewList(b.allocationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			s, err := incomeSourceSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.ListAllocationsByIncome(p.Context, s.ID)
		},
	})

	b.allocationType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			a, err := allocationSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetUser(p.Context, a.UserID)
		},
	})
	b.allocationType.AddFieldConfig("incomeSource", &graphql.Field{
		Type: b.incomeSourceType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			a, err := allocationSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetIncomeSource(p.Context, a.IncomeID)
		},
	})
	b.allocationType.AddFieldConfig("category", &graphql.Field{
		Type: b.categoryType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			a, err := allocationSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetCategory(p.Context, a.CategoryID)
		},
	})

	b.expenseType.AddFieldConfig("user", &graphql.Field{
		Type: b.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e, err := expenseSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetUser(p.Context, e.UserID)
		},
	})
	b.expenseType.AddFieldConfig("category", &graphql.Field{
		Type: b.categoryType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e, err := expenseSource(p)
			if err != nil {
				return nil, err
			}
			return b.st.GetCategory(p.Context, e.CategoryID)
		},
	})
}
