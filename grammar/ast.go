package grammar

// The generic grammar. It accepts the common core of the dialects without a
// dedicated parser; the nodes are only used to check syntax and are
// discarded after parsing.
//
// Expression precedence, lowest to highest:
//  1. OR
//  2. AND
//  3. NOT
//  4. Comparison (=, <>, <, >, <=, >=, IS, IN, BETWEEN, LIKE)
//  5. Addition (+, -, ||)
//  6. Multiplication (*, /, %)
//  7. Unary (+, -, ~)
//  8. Postfix (:: casts, [] subscripts)
//  9. Primary (literals, columns, functions, CASE, CAST, subqueries)
type (
	// Script is a sequence of statements separated by semicolons.
	Script struct {
		Statements []*Statement `parser:"';'* ( @@ ( ';'+ @@ )* ';'* )?"`
	}

	// Batch is a T-SQL batch, where the semicolon is optional.
	Batch struct {
		Statements []*Statement `parser:"( @@ | ';' )*"`
	}

	Statement struct {
		Select      *SelectStmt      `parser:"  @@"`
		Insert      *InsertStmt      `parser:"| @@"`
		Update      *UpdateStmt      `parser:"| @@"`
		Delete      *DeleteStmt      `parser:"| @@"`
		Create      *CreateStmt      `parser:"| @@"`
		Drop        *DropStmt        `parser:"| @@"`
		Alter       *AlterStmt       `parser:"| @@"`
		Truncate    *TruncateStmt    `parser:"| @@"`
		Transaction *TransactionStmt `parser:"| @@"`
		Declare     *DeclareStmt     `parser:"| @@"`
		SetVariable *SetVariableStmt `parser:"| @@"`
		Exec        *ExecStmt        `parser:"| @@"`
		Print       *PrintStmt       `parser:"| @@"`
	}

	SelectStmt struct {
		With    *WithClause  `parser:"@@?"`
		Body    *SelectBody  `parser:"@@"`
		OrderBy []*OrderItem `parser:"( 'ORDER' 'BY' @@ ( ',' @@ )* )?"`
		Limit   *LimitClause `parser:"@@?"`
	}

	WithClause struct {
		Recursive bool   `parser:"'WITH' @'RECURSIVE'?"`
		CTEs      []*CTE `parser:"@@ ( ',' @@ )*"`
	}

	CTE struct {
		Name    *Identifier   `parser:"@@"`
		Columns []*Identifier `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
		Query   *SelectStmt   `parser:"'AS' '(' @@ ')'"`
	}

	SelectBody struct {
		Left *SelectTerm `parser:"@@"`
		Rest []*SetOp    `parser:"@@*"`
	}

	SetOp struct {
		Op         string      `parser:"@( 'UNION' | 'INTERSECT' | 'EXCEPT' | 'MINUS' )"`
		Quantifier string      `parser:"@( 'ALL' | 'DISTINCT' )?"`
		Right      *SelectTerm `parser:"@@"`
	}

	SelectTerm struct {
		Core     *SelectCore   `parser:"  @@"`
		Values   *ValuesClause `parser:"| @@"`
		Subquery *SelectStmt   `parser:"| '(' @@ ')'"`
	}

	SelectCore struct {
		Quantifier string         `parser:"'SELECT' @( 'DISTINCT' | 'ALL' )?"`
		Top        *TopClause     `parser:"@@?"`
		Columns    []*SelectItem  `parser:"@@ ( ',' @@ )*"`
		Into       *QualifiedName `parser:"( 'INTO' @@ )?"`
		From       *FromClause    `parser:"( 'FROM' @@ )?"`
		Where      *Expression    `parser:"( 'WHERE' @@ )?"`
		GroupBy    []*Expression  `parser:"( 'GROUP' 'BY' @@ ( ',' @@ )* )?"`
		Having     *Expression    `parser:"( 'HAVING' @@ )?"`
		Windows    []*NamedWindow `parser:"( 'WINDOW' @@ ( ',' @@ )* )?"`
		Qualify    *Expression    `parser:"( 'QUALIFY' @@ )?"`
	}

	TopClause struct {
		Count    *Expression `parser:"'TOP' ( '(' @@ ')'"`
		Number   *string     `parser:"      | @Number )"`
		Percent  bool        `parser:"@'PERCENT'?"`
		WithTies bool        `parser:"@( 'WITH' 'TIES' )?"`
	}

	SelectItem struct {
		Star bool         `parser:"  @'*'"`
		Expr *AliasedExpr `parser:"| @@"`
	}

	AliasedExpr struct {
		Expr  *Expression `parser:"@@"`
		Alias *string     `parser:"( 'AS'? @( Ident | QuotedIdent | String ) )?"`
	}

	NamedWindow struct {
		Name *Identifier `parser:"@@ 'AS'"`
		Spec *WindowSpec `parser:"'(' @@ ')'"`
	}

	FromClause struct {
		Tables []*TableRef `parser:"@@ ( ',' @@ )*"`
	}

	TableRef struct {
		Source *TableSource `parser:"@@"`
		Joins  []*Join      `parser:"@@*"`
	}

	TableSource struct {
		Lateral  bool           `parser:"@'LATERAL'?"`
		Subquery *SelectStmt    `parser:"( '(' @@ ')'"`
		Function *FunctionCall  `parser:"| @@"`
		Name     *QualifiedName `parser:"| @@ )"`
		Alias    *TableAlias    `parser:"@@?"`
	}

	TableAlias struct {
		Name    string        `parser:"'AS'? @( Ident | QuotedIdent )"`
		Columns []*Identifier `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
	}

	Join struct {
		Kind   string        `parser:"@( 'CROSS' 'JOIN' | 'NATURAL'? ( 'LEFT' 'OUTER'? | 'RIGHT' 'OUTER'? | 'FULL' 'OUTER'? | 'INNER' )? 'JOIN' )"`
		Source *TableSource  `parser:"@@"`
		On     *Expression   `parser:"( 'ON' @@"`
		Using  []*Identifier `parser:"| 'USING' '(' @@ ( ',' @@ )* ')' )?"`
	}

	OrderItem struct {
		Expr      *Expression `parser:"@@"`
		Direction string      `parser:"@( 'ASC' | 'DESC' )?"`
		Nulls     string      `parser:"( 'NULLS' @( 'FIRST' | 'LAST' ) )?"`
	}

	// LimitClause covers LIMIT n [OFFSET m], LIMIT m, n and
	// OFFSET m ROWS FETCH FIRST n ROWS ONLY.
	LimitClause struct {
		Limit  *Expression  `parser:"  'LIMIT' @@"`
		Offset *Expression  `parser:"  ( ( ',' | 'OFFSET' ) @@ )?"`
		Skip   *Expression  `parser:"| 'OFFSET' @@ ( 'ROW' | 'ROWS' )?"`
		Fetch  *FetchClause `parser:"  @@?"`
		Only   *FetchClause `parser:"| @@"`
	}

	FetchClause struct {
		Count *Expression `parser:"'FETCH' ( 'FIRST' | 'NEXT' ) @@? ( 'ROW' | 'ROWS' )"`
		Ties  bool        `parser:"( 'ONLY' | @( 'WITH' 'TIES' ) )"`
	}

	ValuesClause struct {
		Rows []*ValuesRow `parser:"'VALUES' @@ ( ',' @@ )*"`
	}

	ValuesRow struct {
		Values []*Expression `parser:"'ROW'? '(' @@ ( ',' @@ )* ')'"`
	}

	InsertStmt struct {
		Verb      string         `parser:"@( 'INSERT' | 'REPLACE' )"`
		Table     *QualifiedName `parser:"'INTO'? @@"`
		Columns   []*Identifier  `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
		Source    *InsertSource  `parser:"@@"`
		Returning []*SelectItem  `parser:"( 'RETURNING' @@ ( ',' @@ )* )?"`
	}

	InsertSource struct {
		Defaults bool          `parser:"  @( 'DEFAULT' 'VALUES' )"`
		Values   *ValuesClause `parser:"| @@"`
		Select   *SelectStmt   `parser:"| @@"`
	}

	UpdateStmt struct {
		Table     *QualifiedName `parser:"'UPDATE' @@"`
		Alias     *TableAlias    `parser:"@@?"`
		Set       []*Assignment  `parser:"'SET' @@ ( ',' @@ )*"`
		From      *FromClause    `parser:"( 'FROM' @@ )?"`
		Where     *Expression    `parser:"( 'WHERE' @@ )?"`
		Returning []*SelectItem  `parser:"( 'RETURNING' @@ ( ',' @@ )* )?"`
	}

	Assignment struct {
		Column *QualifiedName `parser:"@@ '='"`
		Value  *Expression    `parser:"@@"`
	}

	DeleteStmt struct {
		Table     *QualifiedName `parser:"'DELETE' 'FROM'? @@"`
		Alias     *TableAlias    `parser:"@@?"`
		Using     *FromClause    `parser:"( 'USING' @@ )?"`
		Where     *Expression    `parser:"( 'WHERE' @@ )?"`
		Returning []*SelectItem  `parser:"( 'RETURNING' @@ ( ',' @@ )* )?"`
	}

	CreateStmt struct {
		OrReplace bool         `parser:"'CREATE' @( 'OR' 'REPLACE' )?"`
		Temporary bool         `parser:"@( 'TEMP' | 'TEMPORARY' )?"`
		Table     *CreateTable `parser:"(  @@"`
		View      *CreateView  `parser:" | @@"`
		Index     *CreateIndex `parser:" | @@ )"`
	}

	CreateTable struct {
		IfNotExists bool            `parser:"'TABLE' @( 'IF' 'NOT' 'EXISTS' )?"`
		Name        *QualifiedName  `parser:"@@"`
		Elements    []*TableElement `parser:"(  '(' @@ ( ',' @@ )* ')'"`
		As          *SelectStmt     `parser:" | 'AS' @@ )"`
		Options     []*TableOption  `parser:"@@*"`
	}

	// TableOption is a trailing storage clause such as ENGINE = InnoDB or
	// WITHOUT ROWID.
	TableOption struct {
		Name  string      `parser:"@Ident"`
		Value *Expression `parser:"( '='? @@ )?"`
	}

	TableElement struct {
		Constraint *TableConstraint `parser:"  @@"`
		Column     *ColumnDef       `parser:"| @@"`
	}

	ColumnDef struct {
		Name        *Identifier         `parser:"@@"`
		Type        *DataType           `parser:"@@?"`
		Constraints []*ColumnConstraint `parser:"@@*"`
	}

	ColumnConstraint struct {
		Name       *Identifier `parser:"( 'CONSTRAINT' @@ )?"`
		NotNull    bool        `parser:"(  @( 'NOT' 'NULL' )"`
		Null       bool        `parser:"  | @'NULL'"`
		Primary    string      `parser:"  | 'PRIMARY' 'KEY' @( 'ASC' | 'DESC' )?"`
		Unique     bool        `parser:"  | @'UNIQUE'"`
		Default    *Expression `parser:"  | 'DEFAULT' @@"`
		Check      *Expression `parser:"  | 'CHECK' '(' @@ ')'"`
		References *References `parser:"  | @@"`
		Collate    *Identifier `parser:"  | 'COLLATE' @@"`
		Identity   string      `parser:"  | @( 'AUTOINCREMENT' | 'AUTO_INCREMENT' | 'IDENTITY' ( '(' Number ',' Number ')' )? )"`
		Generated  *Expression `parser:"  | ( 'GENERATED' 'ALWAYS' )? 'AS' '(' @@ ')' ( 'STORED' | 'VIRTUAL' )? )"`
	}

	TableConstraint struct {
		Name       *Identifier   `parser:"( 'CONSTRAINT' @@ )?"`
		Primary    []*OrderItem  `parser:"(  'PRIMARY' 'KEY' '(' @@ ( ',' @@ )* ')'"`
		Unique     []*OrderItem  `parser:" | 'UNIQUE' '(' @@ ( ',' @@ )* ')'"`
		Check      *Expression   `parser:" | 'CHECK' '(' @@ ')'"`
		Foreign    []*Identifier `parser:" | 'FOREIGN' 'KEY' '(' @@ ( ',' @@ )* ')'"`
		References *References   `parser:"   @@ )"`
	}

	References struct {
		Table   *QualifiedName     `parser:"'REFERENCES' @@"`
		Columns []*Identifier      `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
		Actions []*ReferenceAction `parser:"@@*"`
	}

	ReferenceAction struct {
		Event  string `parser:"'ON' @( 'DELETE' | 'UPDATE' )"`
		Action string `parser:"@( 'CASCADE' | 'RESTRICT' | 'SET' ( 'NULL' | 'DEFAULT' ) | 'NO' 'ACTION' )"`
	}

	CreateView struct {
		IfNotExists bool           `parser:"'VIEW' @( 'IF' 'NOT' 'EXISTS' )?"`
		Name        *QualifiedName `parser:"@@"`
		Columns     []*Identifier  `parser:"( '(' @@ ( ',' @@ )* ')' )?"`
		Query       *SelectStmt    `parser:"'AS' @@"`
	}

	CreateIndex struct {
		Unique      bool           `parser:"@'UNIQUE'? ( 'CLUSTERED' | 'NONCLUSTERED' )?"`
		IfNotExists bool           `parser:"'INDEX' @( 'IF' 'NOT' 'EXISTS' )?"`
		Name        *Identifier    `parser:"@@?"`
		Table       *QualifiedName `parser:"'ON' @@"`
		Columns     []*OrderItem   `parser:"'(' @@ ( ',' @@ )* ')'"`
		Where       *Expression    `parser:"( 'WHERE' @@ )?"`
	}

	DropStmt struct {
		Kind     string           `parser:"'DROP' @( 'TABLE' | 'VIEW' | 'INDEX' )"`
		IfExists bool             `parser:"@( 'IF' 'EXISTS' )?"`
		Names    []*QualifiedName `parser:"@@ ( ',' @@ )*"`
		Behavior string           `parser:"@( 'CASCADE' | 'RESTRICT' )?"`
	}

	AlterStmt struct {
		Table   *QualifiedName `parser:"'ALTER' 'TABLE' @@"`
		Actions []*AlterAction `parser:"@@ ( ',' @@ )*"`
	}

	AlterAction struct {
		AddConstraint *TableConstraint `parser:"  'ADD' @@"`
		AddColumn     *ColumnDef       `parser:"| 'ADD' 'COLUMN'? @@"`
		DropColumn    *Identifier      `parser:"| 'DROP' 'COLUMN'? ( 'IF' 'EXISTS' )? @@"`
		RenameColumn  *RenameColumn    `parser:"| 'RENAME' 'COLUMN'? @@"`
		RenameTable   *Identifier      `parser:"| 'RENAME' 'TO' @@"`
	}

	RenameColumn struct {
		From *Identifier `parser:"@@ 'TO'"`
		To   *Identifier `parser:"@@"`
	}

	TruncateStmt struct {
		Table *QualifiedName `parser:"'TRUNCATE' 'TABLE'? @@"`
	}

	TransactionStmt struct {
		Verb string `parser:"@( 'BEGIN' | 'START' | 'COMMIT' | 'ROLLBACK' )"`
		Noun string `parser:"@( 'TRAN' | 'TRANSACTION' | 'WORK' )?"`
	}

	DeclareStmt struct {
		Variables []*VariableDecl `parser:"'DECLARE' @@ ( ',' @@ )*"`
	}

	VariableDecl struct {
		Name  string      `parser:"@Param 'AS'?"`
		Type  *DataType   `parser:"@@"`
		Value *Expression `parser:"( '=' @@ )?"`
	}

	// SetVariableStmt is SET @var = expr or a session option such as
	// SET NOCOUNT ON.
	SetVariableStmt struct {
		Name   string      `parser:"'SET' (  @Param"`
		Value  *Expression `parser:"         '=' @@"`
		Option string      `parser:"       | @Ident @( 'ON' | Ident | Number ) )"`
	}

	ExecStmt struct {
		Procedure *QualifiedName `parser:"( 'EXEC' | 'EXECUTE' ) @@"`
		Args      []*ExecArg     `parser:"( @@ ( ',' @@ )* )?"`
	}

	ExecArg struct {
		Name  *string     `parser:"( @Param '=' )?"`
		Value *Expression `parser:"@@"`
	}

	PrintStmt struct {
		Value *Expression `parser:"'PRINT' @@"`
	}

	Expression struct {
		Or *OrExpression `parser:"@@"`
	}

	OrExpression struct {
		And  *AndExpression   `parser:"@@"`
		Rest []*AndExpression `parser:"( 'OR' @@ )*"`
	}

	AndExpression struct {
		Not  *NotExpression   `parser:"@@"`
		Rest []*NotExpression `parser:"( 'AND' @@ )*"`
	}

	NotExpression struct {
		Not        bool                  `parser:"@'NOT'?"`
		Comparison *ComparisonExpression `parser:"@@"`
	}

	ComparisonExpression struct {
		Addition *AdditionExpression `parser:"@@"`
		Rest     *ComparisonRest     `parser:"@@?"`
	}

	ComparisonRest struct {
		Simple  *SimpleComparison  `parser:"  @@"`
		Is      *IsComparison      `parser:"| @@"`
		In      *InComparison      `parser:"| @@"`
		Between *BetweenComparison `parser:"| @@"`
		Like    *LikeComparison    `parser:"| @@"`
	}

	SimpleComparison struct {
		Op         string              `parser:"@( '=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' )"`
		Quantifier string              `parser:"@( 'ANY' | 'ALL' | 'SOME' )?"`
		Addition   *AdditionExpression `parser:"@@"`
	}

	IsComparison struct {
		Not          bool                `parser:"'IS' @'NOT'?"`
		Null         bool                `parser:"(  @'NULL'"`
		Bool         string              `parser:" | @( 'TRUE' | 'FALSE' | 'UNKNOWN' )"`
		DistinctFrom *AdditionExpression `parser:" | 'DISTINCT' 'FROM' @@ )"`
	}

	InComparison struct {
		Not      bool          `parser:"@'NOT'? 'IN' '('"`
		Subquery *SelectStmt   `parser:"(  @@"`
		Values   []*Expression `parser:" | @@ ( ',' @@ )* ) ')'"`
	}

	BetweenComparison struct {
		Not   bool                `parser:"@'NOT'? 'BETWEEN'"`
		Lower *AdditionExpression `parser:"@@ 'AND'"`
		Upper *AdditionExpression `parser:"@@"`
	}

	LikeComparison struct {
		Not     bool                `parser:"@'NOT'?"`
		Op      string              `parser:"@( 'LIKE' | 'ILIKE' | 'GLOB' | 'REGEXP' | 'RLIKE' | 'SIMILAR' 'TO' )"`
		Pattern *AdditionExpression `parser:"@@"`
		Escape  *AdditionExpression `parser:"( 'ESCAPE' @@ )?"`
	}

	AdditionExpression struct {
		Multiplication *MultiplicationExpression `parser:"@@"`
		Rest           []*AdditionRest           `parser:"@@*"`
	}

	AdditionRest struct {
		Op             string                    `parser:"@( '+' | '-' | '||' )"`
		Multiplication *MultiplicationExpression `parser:"@@"`
	}

	MultiplicationExpression struct {
		Unary *UnaryExpression      `parser:"@@"`
		Rest  []*MultiplicationRest `parser:"@@*"`
	}

	MultiplicationRest struct {
		Op    string           `parser:"@( '*' | '/' | '%' )"`
		Unary *UnaryExpression `parser:"@@"`
	}

	UnaryExpression struct {
		Op      string             `parser:"@( '-' | '+' | '~' )?"`
		Postfix *PostfixExpression `parser:"@@"`
	}

	PostfixExpression struct {
		Primary    *PrimaryExpression `parser:"@@"`
		Operations []*PostfixOp       `parser:"@@*"`
	}

	PostfixOp struct {
		Cast      *DataType   `parser:"  '::' @@"`
		Subscript *Expression `parser:"| '[' @@ ']'"`
		Collate   *Identifier `parser:"| 'COLLATE' @@"`
	}

	PrimaryExpression struct {
		Case     *CaseExpression  `parser:"  @@"`
		Cast     *CastExpression  `parser:"| @@"`
		Exists   *SelectStmt      `parser:"| 'EXISTS' '(' @@ ')'"`
		Interval *IntervalLiteral `parser:"| @@"`
		Subquery *SelectStmt      `parser:"| '(' @@ ')'"`
		Tuple    []*Expression    `parser:"| '(' @@ ( ',' @@ )* ')'"`
		Literal  *Literal         `parser:"| @@"`
		Param    *string          `parser:"| @Param"`
		Function *FunctionCall    `parser:"| @@"`
		Column   *ColumnRef       `parser:"| @@"`
	}

	Literal struct {
		String  *string `parser:"  @String"`
		Number  *string `parser:"| @Number"`
		Boolean *string `parser:"| @( 'TRUE' | 'FALSE' )"`
		Null    bool    `parser:"| @'NULL'"`
	}

	// IntervalLiteral is INTERVAL '1' DAY, INTERVAL 1 DAY and
	// INTERVAL '1 day'.
	IntervalLiteral struct {
		Value *AdditionExpression `parser:"'INTERVAL' @@"`
		Unit  *string             `parser:"@Ident?"`
	}

	CaseExpression struct {
		Operand *Expression   `parser:"'CASE' @@?"`
		Whens   []*WhenClause `parser:"@@+"`
		Else    *Expression   `parser:"( 'ELSE' @@ )? 'END'"`
	}

	WhenClause struct {
		Condition *Expression `parser:"'WHEN' @@"`
		Result    *Expression `parser:"'THEN' @@"`
	}

	CastExpression struct {
		Function string      `parser:"@( 'CAST' | 'TRY_CAST' | 'SAFE_CAST' ) '('"`
		Value    *Expression `parser:"@@ 'AS'"`
		Type     *DataType   `parser:"@@ ')'"`
	}

	FunctionCall struct {
		Name     *FunctionName  `parser:"@@ '('"`
		Star     bool           `parser:"(  @'*'"`
		Distinct bool           `parser:" | @'DISTINCT'?"`
		Args     []*FunctionArg `parser:"   @@ ( ',' @@ )* )? ')'"`
		Filter   *Expression    `parser:"( 'FILTER' '(' 'WHERE' @@ ')' )?"`
		Over     *OverClause    `parser:"@@?"`
	}

	// FunctionName also admits the keywords that double as function names,
	// such as LEFT, RIGHT and REPLACE.
	FunctionName struct {
		Parts []string `parser:"( @( Ident | QuotedIdent ) '.' )* @( Ident | QuotedIdent | 'LEFT' | 'RIGHT' | 'REPLACE' )"`
	}

	// FunctionArg also takes the FROM and FOR forms of EXTRACT and
	// SUBSTRING.
	FunctionArg struct {
		Select *SelectStmt   `parser:"(  @@"`
		Expr   *Expression   `parser:" | @@ )"`
		Tail   []*Expression `parser:"( ( 'FROM' | 'FOR' ) @@ )*"`
		Order  []*OrderItem  `parser:"( 'ORDER' 'BY' @@ ( ',' @@ )* )?"`
	}

	OverClause struct {
		Name *Identifier `parser:"'OVER' (  @@"`
		Spec *WindowSpec `parser:"        | '(' @@ ')' )"`
	}

	WindowSpec struct {
		PartitionBy []*Expression `parser:"( 'PARTITION' 'BY' @@ ( ',' @@ )* )?"`
		OrderBy     []*OrderItem  `parser:"( 'ORDER' 'BY' @@ ( ',' @@ )* )?"`
		Frame       *WindowFrame  `parser:"@@?"`
	}

	WindowFrame struct {
		Unit  string      `parser:"@( 'ROWS' | 'RANGE' | 'GROUPS' )"`
		Start *FrameBound `parser:"(  'BETWEEN' @@"`
		End   *FrameBound `parser:"   'AND' @@"`
		Only  *FrameBound `parser:" | @@ )"`
	}

	FrameBound struct {
		Unbounded bool        `parser:"(  @'UNBOUNDED'"`
		Current   bool        `parser:" | @( 'CURRENT' 'ROW' )"`
		Offset    *Expression `parser:" | @@ )"`
		Direction string      `parser:"@( 'PRECEDING' | 'FOLLOWING' )?"`
	}

	ColumnRef struct {
		Parts []string `parser:"@( Ident | QuotedIdent ) ( '.' @( Ident | QuotedIdent | '*' ) )*"`
	}

	QualifiedName struct {
		Parts []string `parser:"@( Ident | QuotedIdent ) ( '.' @( Ident | QuotedIdent ) )*"`
	}

	Identifier struct {
		Name string `parser:"@( Ident | QuotedIdent )"`
	}

	// DataType is a possibly multi word type name with optional arguments,
	// such as VARCHAR(20), DOUBLE PRECISION or TIMESTAMP WITH TIME ZONE.
	DataType struct {
		Words    []string `parser:"@Ident+"`
		Args     []string `parser:"( '(' @( Number | Ident ) ( ',' @Number )* ')' )?"`
		TimeZone string   `parser:"( @( 'WITH' | 'WITHOUT' ) 'TIME' 'ZONE' )?"`
		Array    bool     `parser:"@( '[' ']' )?"`
	}
)
