package turtle

// StatementKind classifies the syntactic role a single physical line plays
// in a Turtle document.
type StatementKind int

const (
	KindNotATurtle StatementKind = iota
	KindWhitespace
	KindComment
	KindTerminator
	KindBasePrefix
	KindNormPrefix
	KindStatementWithTerminator
	KindPartOfPredicateListWithSubject
	KindPartOfPredicateList
	KindPartOfObjectListWithPredicate
	KindPartOfObjectList
	KindPartOfObjectListAsLiteral
	KindPartOfCollectionList
)

func (k StatementKind) String() string {
	switch k {
	case KindNotATurtle:
		return "NotATurtle"
	case KindWhitespace:
		return "Whitespace"
	case KindComment:
		return "Comment"
	case KindTerminator:
		return "Terminator"
	case KindBasePrefix:
		return "BasePrefix"
	case KindNormPrefix:
		return "NormPrefix"
	case KindStatementWithTerminator:
		return "StatementWithTerminator"
	case KindPartOfPredicateListWithSubject:
		return "PartOfPredicateListWithSubject"
	case KindPartOfPredicateList:
		return "PartOfPredicateList"
	case KindPartOfObjectListWithPredicate:
		return "PartOfObjectListWithPredicate"
	case KindPartOfObjectList:
		return "PartOfObjectList"
	case KindPartOfObjectListAsLiteral:
		return "PartOfObjectListAsLiteral"
	case KindPartOfCollectionList:
		return "PartOfCollectionList"
	default:
		return "Unknown"
	}
}
