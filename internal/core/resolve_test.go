package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"propmeta/internal/types"
)

func TestResolveNarrowingOnSameDeclaration(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "CompileTask",
		Kind: types.TypeKindClass,
		Methods: []types.MethodDecl{
			{
				Name:       "getClasspath",
				ReturnType: "FileCollection",
				Markers:    []types.Marker{{Name: "InputFiles"}, {Name: "Classpath"}},
				Visibility: types.VisibilityPublic,
			},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "CompileTask")
	require.NoError(t, err)
	want := []types.ResolvedProperty{
		{Name: "classpath", Category: "Classpath"},
	}
	if diff := cmp.Diff(want, result.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
	require.Empty(t, result.Diagnostics)
}

func TestResolveNarrowingAcrossHierarchy(t *testing.T) {
	extractor := newTestExtractor(t)
	base := types.TypeDescription{
		Name: "BaseTask",
		Kind: types.TypeKindClass,
		Methods: []types.MethodDecl{
			{Name: "getFile", ReturnType: "FileCollection", Markers: []types.Marker{{Name: "InputFiles"}}, Visibility: types.VisibilityPublic},
		},
	}

	result, err := extractor.Extract(t.Context(), setOf(base), "BaseTask")
	require.NoError(t, err)
	if diff := cmp.Diff([]types.ResolvedProperty{{Name: "file", Category: "InputFiles"}}, result.Properties); diff != "" {
		t.Fatalf("unexpected base properties (-want +got):\n%s", diff)
	}
	require.Empty(t, result.Diagnostics)

	// Override with an unrelated category replaces the inherited one.
	middle := types.TypeDescription{
		Name:       "MiddleTask",
		Kind:       types.TypeKindClass,
		Superclass: "BaseTask",
		Methods: []types.MethodDecl{
			{Name: "getFile", ReturnType: "FileCollection", Markers: []types.Marker{{Name: "OutputFile"}}, Visibility: types.VisibilityPublic, Override: true},
		},
	}
	result, err = extractor.Extract(t.Context(), setOf(base, middle), "MiddleTask")
	require.NoError(t, err)
	if diff := cmp.Diff([]types.ResolvedProperty{{Name: "file", Category: "OutputFile"}}, result.Properties); diff != "" {
		t.Fatalf("unexpected middle properties (-want +got):\n%s", diff)
	}
	require.Empty(t, result.Diagnostics)

	// Override with the narrowing category of the base declaration.
	leaf := types.TypeDescription{
		Name:       "LeafTask",
		Kind:       types.TypeKindClass,
		Superclass: "MiddleTask",
		Methods: []types.MethodDecl{
			{Name: "getFile", ReturnType: "FileCollection", Markers: []types.Marker{{Name: "Classpath"}}, Visibility: types.VisibilityPublic, Override: true},
		},
	}
	result, err = extractor.Extract(t.Context(), setOf(base, middle, leaf), "LeafTask")
	require.NoError(t, err)
	if diff := cmp.Diff([]types.ResolvedProperty{{Name: "file", Category: "Classpath"}}, result.Properties); diff != "" {
		t.Fatalf("unexpected leaf properties (-want +got):\n%s", diff)
	}
	require.Empty(t, result.Diagnostics)
}

func TestResolveConflictPicksFirstConfiguredCategory(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "SyncTask",
		Kind: types.TypeKindClass,
		Methods: []types.MethodDecl{
			{
				Name:       "getManifest",
				ReturnType: "File",
				Markers:    []types.Marker{{Name: "OutputFile"}, {Name: "InputFile"}},
				Visibility: types.VisibilityPublic,
			},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "SyncTask")
	require.NoError(t, err)
	want := []types.ResolvedProperty{
		{Name: "manifest", Category: "InputFile"},
	}
	if diff := cmp.Diff(want, result.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
	wantDiags := []types.Diagnostic{
		{Property: "manifest", Kind: types.DiagnosticConflictingMarkers, Markers: []string{"InputFile", "OutputFile"}},
	}
	if diff := cmp.Diff(wantDiags, result.Diagnostics); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestResolveConflictAfterPartialNarrowing(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "MixedTask",
		Kind: types.TypeKindClass,
		Methods: []types.MethodDecl{
			{
				Name:       "getEntries",
				ReturnType: "FileCollection",
				Markers:    []types.Marker{{Name: "InputFiles"}, {Name: "Classpath"}, {Name: "OutputDirectory"}},
				Visibility: types.VisibilityPublic,
			},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "MixedTask")
	require.NoError(t, err)
	// InputFiles collapses into Classpath; the remaining pair conflicts.
	wantDiags := []types.Diagnostic{
		{Property: "entries", Kind: types.DiagnosticConflictingMarkers, Markers: []string{"OutputDirectory", "Classpath"}},
	}
	if diff := cmp.Diff(wantDiags, result.Diagnostics); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.ResolvedProperty{{Name: "entries", Category: "OutputDirectory"}}, result.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
}

func TestResolveUnsupportedMarkerAlone(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "CacheTask",
		Kind: types.TypeKindClass,
		Fields: []types.FieldDecl{
			{Name: "state", Markers: []types.Marker{{Name: "Incremental"}}, Visibility: types.VisibilityPrivate},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "CacheTask")
	require.NoError(t, err)
	require.Empty(t, result.Properties)
	wantDiags := []types.Diagnostic{
		{Property: "state", Kind: types.DiagnosticUnsupportedMarker, Markers: []string{"Incremental"}},
	}
	if diff := cmp.Diff(wantDiags, result.Diagnostics); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestResolveUnsupportedMarkerNextToPrimarySibling(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "CacheTask",
		Kind: types.TypeKindClass,
		Fields: []types.FieldDecl{
			{Name: "state", Markers: []types.Marker{{Name: "Incremental"}}, Visibility: types.VisibilityPrivate},
			{Name: "source", Markers: []types.Marker{{Name: "Input"}}, Visibility: types.VisibilityProtected},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "CacheTask")
	require.NoError(t, err)
	want := []types.ResolvedProperty{
		{Name: "source", Category: "Input"},
	}
	if diff := cmp.Diff(want, result.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
	wantDiags := []types.Diagnostic{
		{Property: "state", Kind: types.DiagnosticUnsupportedMarker, Markers: []string{"Incremental"}},
	}
	if diff := cmp.Diff(wantDiags, result.Diagnostics); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}

func TestResolveUnsupportedMarkerDoesNotChangeWinner(t *testing.T) {
	extractor := newTestExtractor(t)
	set := setOf(types.TypeDescription{
		Name: "BuildTask",
		Kind: types.TypeKindClass,
		Methods: []types.MethodDecl{
			{
				Name:       "getSpec",
				ReturnType: "File",
				Markers:    []types.Marker{{Name: "InputFile"}, {Name: "Incremental"}},
				Visibility: types.VisibilityPublic,
			},
		},
	})

	result, err := extractor.Extract(t.Context(), set, "BuildTask")
	require.NoError(t, err)
	want := []types.ResolvedProperty{
		{Name: "spec", Category: "InputFile"},
	}
	if diff := cmp.Diff(want, result.Properties); diff != "" {
		t.Fatalf("unexpected properties (-want +got):\n%s", diff)
	}
	wantDiags := []types.Diagnostic{
		{Property: "spec", Kind: types.DiagnosticUnsupportedMarker, Markers: []string{"Incremental"}},
	}
	if diff := cmp.Diff(wantDiags, result.Diagnostics); diff != "" {
		t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
	}
}
