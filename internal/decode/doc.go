// Package decode converts untyped JSON values into validated, typed records.
//
// Each record type declares its shape once as a [Schema]: an ordered list of
// fields, each with a [Type] built from the constructors in this package
// ([String], [Int], [Optional], [List], [Record], ...). Decoding walks the
// schema instead of reflecting over Go struct fields:
//
//	var userSchema = decode.Define("User", func(o *decode.Object) *User {
//	    return &User{
//	        ID:       decode.Get[string](o, "id"),
//	        FullName: decode.GetPtr[string](o, "full_name"),
//	    }
//	},
//	    decode.Field{Name: "id", Type: decode.String()},
//	    decode.Field{Name: "full_name", Type: decode.Optional(decode.String())},
//	)
//
//	user, err := userSchema.Decode(raw)
//
// Every failing field is collected. A decode attempt either returns a fully
// built value or a single [*ValidationError] listing all of them.
//
// JSON input should be parsed with json.Decoder.UseNumber so that integers
// and floating point numbers stay distinguishable.
package decode
