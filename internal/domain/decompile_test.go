package domain

import (
	"strings"
	"testing"
)

func classBytes(body string) []byte {
	return append(ClassMagic[:], []byte(body)...)
}

func TestDecompile_MainAndClassName(t *testing.T) {
	code := Decompile(classBytes("\x00\x01public static void main\x00"), "Foo.class")

	if !strings.Contains(code, "public class Foo {") {
		t.Errorf("expected class Foo, got:\n%s", code)
	}
	if !strings.Contains(code, "public static void main(String[] args)") {
		t.Errorf("expected main stub, got:\n%s", code)
	}
	if strings.Contains(code, "public Foo()") {
		t.Errorf("unexpected constructor without <init> marker:\n%s", code)
	}
}

func TestDecompile_Header(t *testing.T) {
	code := Decompile(classBytes(""), "com/app/Main.class")
	lines := strings.Split(code, "\n")

	if lines[0] != "// Decompiled from: com/app/Main.class" {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "// Simplified view") {
		t.Errorf("unexpected second line %q", lines[1])
	}
	if !strings.Contains(code, "public class Main {") {
		t.Errorf("expected class Main, got:\n%s", code)
	}
	if !strings.HasSuffix(code, "}\n") {
		t.Errorf("expected closing brace, got:\n%s", code)
	}
}

func TestDecompile_EmptyClassExact(t *testing.T) {
	want := "// Decompiled from: Empty.class\n" +
		"// Simplified view: generated from marker scan, not full bytecode analysis\n" +
		"\n" +
		"public class Empty {\n" +
		"}\n"
	if got := Decompile(classBytes("nothing here"), "Empty.class"); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestDecompile_Constructor(t *testing.T) {
	code := Decompile(classBytes("\x01\x00\x06<init>\x01"), "Widget.class")

	want := "    public Widget() {\n        super();\n    }"
	if !strings.Contains(code, want) {
		t.Errorf("expected constructor stub, got:\n%s", code)
	}
}

func TestDecompile_MethodStubsNotDeduplicated(t *testing.T) {
	buf := classBytes("Method run\x00Method run\x00Method run\x00")
	code := Decompile(buf, "Task.class")

	if got := strings.Count(code, "public void run()"); got != 3 {
		t.Errorf("expected 3 run stubs, got %d:\n%s", got, code)
	}
	if got := strings.Count(code, "// Method: run"); got != 3 {
		t.Errorf("expected 3 run body comments, got %d", got)
	}
}

func TestDecompile_OrderAndReservedNames(t *testing.T) {
	buf := classBytes("Field count Method start Method main Method init " +
		"public static void main <init> Method stop Field name")
	code := Decompile(buf, "Svc.class")

	mainIdx := strings.Index(code, "public static void main(")
	ctorIdx := strings.Index(code, "public Svc()")
	startIdx := strings.Index(code, "public void start()")
	stopIdx := strings.Index(code, "public void stop()")
	countIdx := strings.Index(code, "private Object count;")
	nameIdx := strings.Index(code, "private Object name;")

	for label, idx := range map[string]int{
		"main": mainIdx, "ctor": ctorIdx, "start": startIdx,
		"stop": stopIdx, "count": countIdx, "name": nameIdx,
	} {
		if idx < 0 {
			t.Fatalf("missing %s in:\n%s", label, code)
		}
	}

	if !(mainIdx < ctorIdx && ctorIdx < startIdx && startIdx < stopIdx && stopIdx < countIdx && countIdx < nameIdx) {
		t.Errorf("unexpected ordering:\n%s", code)
	}
	if strings.Contains(code, "public void main()") {
		t.Error("main must not produce a method stub")
	}
	if strings.Contains(code, "public void init()") {
		t.Error("init must not produce a method stub")
	}
}

func TestDecompile_FieldsNotDeduplicated(t *testing.T) {
	code := Decompile(classBytes("Field id Field id"), "Rec.class")
	if got := strings.Count(code, "private Object id;"); got != 2 {
		t.Errorf("expected 2 id fields, got %d:\n%s", got, code)
	}
}

func TestDecompile_InvalidUTF8IsNotFatal(t *testing.T) {
	buf := classBytes("\xff\xfe\xfdMethod go\xc3\x28Field x")
	code := Decompile(buf, "Bin.class")

	if !strings.Contains(code, "public void go()") {
		t.Errorf("expected go stub, got:\n%s", code)
	}
	if !strings.Contains(code, "private Object x;") {
		t.Errorf("expected x field, got:\n%s", code)
	}
}

func TestDecompile_DefaultClassName(t *testing.T) {
	code := Decompile(classBytes(""), "")
	if !strings.Contains(code, "public class "+DefaultClassName+" {") {
		t.Errorf("expected placeholder class name, got:\n%s", code)
	}
}

func TestScanMarkers(t *testing.T) {
	tests := []struct {
		name        string
		surface     string
		wantMain    bool
		wantCtor    bool
		wantMethods []string
		wantFields  []string
	}{
		{
			name:    "empty",
			surface: "",
		},
		{
			name:        "methods in order",
			surface:     "Method b Method a Method b",
			wantMethods: []string{"b", "a", "b"},
		},
		{
			name:        "identifier characters only",
			surface:     "Method do_it2(",
			wantMethods: []string{"do_it2"},
		},
		{
			name:     "markers",
			surface:  "xx public static void main yy <init>",
			wantMain: true,
			wantCtor: true,
		},
		{
			name:       "field without name is ignored",
			surface:    "Field  Field ok",
			wantFields: []string{"ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanMarkers(tt.surface)
			if got.HasMain != tt.wantMain || got.HasConstructor != tt.wantCtor {
				t.Errorf("main/ctor = %v/%v, want %v/%v", got.HasMain, got.HasConstructor, tt.wantMain, tt.wantCtor)
			}
			if strings.Join(got.Methods, ",") != strings.Join(tt.wantMethods, ",") {
				t.Errorf("Methods = %v, want %v", got.Methods, tt.wantMethods)
			}
			if strings.Join(got.Fields, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("Fields = %v, want %v", got.Fields, tt.wantFields)
			}
		})
	}
}
