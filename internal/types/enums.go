package types

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)

type TypeKind string

const (
	TypeKindClass     TypeKind = "class"
	TypeKindInterface TypeKind = "interface"
)

type MemberKind string

const (
	MemberKindField    MemberKind = "field"
	MemberKindGetter   MemberKind = "getter"
	MemberKindIsGetter MemberKind = "is-getter"
)

type DiagnosticKind string

const (
	DiagnosticConflictingMarkers DiagnosticKind = "conflicting-markers"
	DiagnosticDuplicateMarker    DiagnosticKind = "duplicate-marker"
	DiagnosticPrivateAnnotated   DiagnosticKind = "private-annotated"
	DiagnosticNotAnnotated       DiagnosticKind = "not-annotated"
	DiagnosticUnsupportedMarker  DiagnosticKind = "unsupported-marker"
)
